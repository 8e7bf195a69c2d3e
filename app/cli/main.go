// Файл: cli/main.go
// Консольный клиент: логинится, гоняет сторы и печатает результат.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"asset-system/internal/authz"
	"asset-system/internal/listeners"
	"asset-system/internal/report"
	"asset-system/internal/session"
	"asset-system/internal/state"
	"asset-system/internal/transport"
	"asset-system/pkg/config"
	"asset-system/pkg/constants"
	apperrors "asset-system/pkg/errors"
	"asset-system/pkg/eventbus"
	applogger "asset-system/pkg/logger"
)

type options struct {
	cmd      string
	user     string
	password string
	file     string
	what     string
	plant    uint64
	asset    uint64
	status   string
	approve  uint64
	days     int
}

func parseFlags(cfg *config.Config) options {
	var o options
	flag.StringVar(&o.cmd, "cmd", "whoami", "whoami|assets|maintenance|calibration|plants|export|import")
	flag.StringVar(&o.user, "user", cfg.API.EmployeeCode, "mã nhân viên")
	flag.StringVar(&o.password, "password", cfg.API.Password, "mật khẩu")
	flag.StringVar(&o.file, "file", "", "đường dẫn file xlsx (export/import)")
	flag.StringVar(&o.what, "what", constants.ResourceAssets, "export: assets|maintenance")
	flag.Uint64Var(&o.plant, "plant", 0, "assets: lọc theo nhà máy")
	flag.Uint64Var(&o.asset, "asset", 0, "maintenance/calibration: lọc theo thiết bị")
	flag.StringVar(&o.status, "status", "", "assets/maintenance: lọc theo trạng thái")
	flag.Uint64Var(&o.approve, "approve", 0, "maintenance: phê duyệt yêu cầu theo id")
	flag.IntVar(&o.days, "days", 30, "calibration: hạn hiệu chuẩn trong N ngày")
	flag.Parse()
	return o
}

type app struct {
	opts    options
	session *session.Session
	root    *state.Root
	gate    *authz.Gatekeeper
	logger  *zap.Logger
}

func main() {
	os.Exit(realMain())
}

// realMain держит все defer, поэтому os.Exit вызывается только в main.
func realMain() int {
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log)
	defer logger.Sync()

	opts := parseFlags(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return execute(ctx, cfg.API, opts, logger)
}

// execute логинится, выполняет команду и возвращает код выхода.
func execute(ctx context.Context, api config.APIConfig, opts options, logger *zap.Logger) int {
	client := transport.NewClient(api.BaseURL, api.Timeout, logger)
	bus := eventbus.New(logger)
	settlements := listeners.NewSettlementListener(logger)
	settlements.Register(bus)

	a := &app{
		opts:    opts,
		session: session.New(client, logger),
		root:    state.New(client, bus, logger),
		gate:    authz.NewGatekeeper(logger),
		logger:  logger,
	}
	defer a.root.Close()

	if _, err := a.session.Login(ctx, opts.user, opts.password); err != nil {
		fmt.Fprintln(os.Stderr, "Đăng nhập thất bại:", apperrors.Message(err, "lỗi không xác định"))
		return 1
	}

	err := a.run(ctx)
	bus.Wait()
	for resource, st := range settlements.Stats() {
		logger.Debug("итог по ресурсу",
			zap.String("resource", resource),
			zap.Int("fulfilled", st.Fulfilled),
			zap.Int("rejected", st.Rejected),
		)
	}
	if err != nil {
		logger.Debug("команда завершилась ошибкой", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Lỗi:", apperrors.Message(err, "lỗi không xác định"))
		return 1
	}
	return 0
}

func (a *app) run(ctx context.Context) error {
	switch a.opts.cmd {
	case "whoami":
		return a.whoami()
	case "assets":
		return a.assets(ctx)
	case "maintenance":
		return a.maintenance(ctx)
	case "calibration":
		return a.calibration(ctx)
	case "plants":
		items, err := a.root.Plants.FetchAll(ctx)
		if err != nil {
			return err
		}
		return printJSON(items)
	case "export":
		return a.export(ctx)
	case "import":
		return a.importAssets(ctx)
	}
	return fmt.Errorf("lệnh không xác định: %s", a.opts.cmd)
}

func (a *app) whoami() error {
	user := a.session.CurrentUser()
	return printJSON(map[string]any{
		"user":  user,
		"role":  authz.GetUserRole(user),
		"roles": a.session.Roles(),
		"capabilities": map[string]bool{
			authz.MaintenanceCreate:      a.gate.Can(user, authz.MaintenanceCreate),
			authz.MaintenanceApprove:     a.gate.Can(user, authz.MaintenanceApprove),
			authz.MaintenanceResultsView: a.gate.Can(user, authz.MaintenanceResultsView),
		},
	})
}

func (a *app) assets(ctx context.Context) error {
	var err error
	switch {
	case a.opts.plant != 0:
		_, err = a.root.Assets.FetchByPlant(ctx, a.opts.plant)
	case a.opts.status != "":
		_, err = a.root.Assets.FetchByStatus(ctx, constants.AssetStatus(a.opts.status))
	default:
		_, err = a.root.Assets.FetchAll(ctx)
	}
	if err != nil {
		return err
	}
	return printJSON(a.root.Assets.Snapshot().Items)
}

func (a *app) maintenance(ctx context.Context) error {
	if a.opts.approve != 0 {
		// Сервер проверит сам, здесь только подсказка пользователю.
		if !a.gate.Can(a.session.CurrentUser(), authz.MaintenanceApprove) {
			fmt.Fprintln(os.Stderr, "Cảnh báo: bạn có thể không có quyền phê duyệt")
		}
		record, err := a.root.Maintenance.Approve(ctx, a.opts.approve)
		if err != nil {
			return err
		}
		return printJSON(record)
	}

	var err error
	switch {
	case a.opts.asset != 0:
		_, err = a.root.Maintenance.FetchByAsset(ctx, a.opts.asset)
	case a.opts.status != "":
		_, err = a.root.Maintenance.FetchByStatus(ctx, constants.MaintenanceStatus(a.opts.status))
	default:
		_, err = a.root.Maintenance.FetchAll(ctx)
	}
	if err != nil {
		return err
	}
	return printJSON(a.root.Maintenance.Snapshot().Items)
}

func (a *app) calibration(ctx context.Context) error {
	var err error
	if a.opts.asset != 0 {
		_, err = a.root.Calibration.FetchByAsset(ctx, a.opts.asset)
	} else {
		_, err = a.root.Calibration.FetchAll(ctx)
	}
	if err != nil {
		return err
	}
	due := a.root.Calibration.FetchDue(time.Now().AddDate(0, 0, a.opts.days))
	return printJSON(map[string]any{
		"items": a.root.Calibration.Snapshot().Items,
		"due":   due,
	})
}

func (a *app) export(ctx context.Context) error {
	if a.opts.file == "" {
		return errors.New("cần chỉ định -file")
	}
	assets, err := a.root.Assets.FetchAll(ctx)
	if err != nil {
		return err
	}

	switch a.opts.what {
	case constants.ResourceAssets:
		plants, err := a.root.Plants.FetchAll(ctx)
		if err != nil {
			return err
		}
		err = report.ExportAssets(a.opts.file, assets, plants)
		if err != nil {
			return err
		}
	case constants.ResourceMaintenance:
		records, err := a.root.Maintenance.FetchAll(ctx)
		if err != nil {
			return err
		}
		if err := report.ExportMaintenance(a.opts.file, records, assets); err != nil {
			return err
		}
	default:
		return fmt.Errorf("không hỗ trợ xuất: %s", a.opts.what)
	}

	a.logger.Info("файл сохранён", zap.String("file", a.opts.file), zap.String("what", a.opts.what))
	return nil
}

func (a *app) importAssets(ctx context.Context) error {
	if a.opts.file == "" {
		return errors.New("cần chỉ định -file")
	}
	plants, err := a.root.Plants.FetchAll(ctx)
	if err != nil {
		return err
	}
	result, err := report.NewAssetImporter(a.root.Assets, a.logger).Import(ctx, a.opts.file, plants)
	if result != nil {
		if printErr := printJSON(result); printErr != nil {
			return printErr
		}
	}
	return err
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
