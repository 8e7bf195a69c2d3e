package seeders

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"asset-system/internal/entities"
	"asset-system/internal/repositories"
	"asset-system/internal/services"
	"asset-system/pkg/utils"
	"asset-system/pkg/validation"
)

// Seed наполняет хранилища тестового сервера. Данные проходят тот же валидатор
// и те же сервисы, что и запросы API.
func Seed(ctx context.Context, repo *repositories.Registry, logger *zap.Logger) error {
	logger.Info("▶️  Запуск наполнения тестовых данных...")
	v := validation.New()

	if err := seedUsers(ctx, repo, v); err != nil {
		return fmt.Errorf("ошибка наполнения пользователей: %w", err)
	}
	if err := seedPlants(ctx, repo, v, logger); err != nil {
		return fmt.Errorf("ошибка наполнения заводов: %w", err)
	}
	if err := seedAssets(ctx, repo, v, logger); err != nil {
		return fmt.Errorf("ошибка наполнения оборудования: %w", err)
	}
	if err := seedMaintenance(ctx, repo, v, logger); err != nil {
		return fmt.Errorf("ошибка наполнения заявок на обслуживание: %w", err)
	}
	if err := seedCalibration(ctx, repo, v, logger); err != nil {
		return fmt.Errorf("ошибка наполнения поверок: %w", err)
	}

	logger.Info("✅ Наполнение тестовых данных завершено",
		zap.Int("users", repo.Users.Count()),
		zap.Int("plants", repo.Plants.Count()),
		zap.Int("assets", repo.Assets.Count()),
		zap.Int("maintenance", repo.Maintenance.Count()),
		zap.Int("calibration", repo.Calibration.Count()),
	)
	return nil
}

func seedUsers(ctx context.Context, repo *repositories.Registry, v *validation.CustomValidator) error {
	for _, u := range usersData {
		if err := v.Validate(u); err != nil {
			return fmt.Errorf("пользователь %s: %w", u.EmployeeCode, err)
		}
		hash, err := utils.HashPassword(u.Password)
		if err != nil {
			return err
		}
		if _, err := repo.Users.Create(ctx, entities.User{
			ID:           u.ID,
			FullName:     u.FullName,
			EmployeeCode: u.EmployeeCode,
			Email:        u.Email,
			Position:     u.Position,
			Department:   u.Department,
			Password:     hash,
		}); err != nil {
			return err
		}
	}
	return nil
}

func seedPlants(ctx context.Context, repo *repositories.Registry, v *validation.CustomValidator, logger *zap.Logger) error {
	svc := services.NewPlantService(repo, logger.Named("seed"))
	for _, p := range plantsData {
		if err := v.Validate(p); err != nil {
			return fmt.Errorf("завод %s: %w", p.Code, err)
		}
		if _, err := svc.CreatePlant(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func seedAssets(ctx context.Context, repo *repositories.Registry, v *validation.CustomValidator, logger *zap.Logger) error {
	svc := services.NewAssetService(repo, logger.Named("seed"))
	for _, a := range assetsData {
		if err := v.Validate(a); err != nil {
			return fmt.Errorf("оборудование %s: %w", a.Code, err)
		}
		if _, err := svc.CreateAsset(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func seedMaintenance(ctx context.Context, repo *repositories.Registry, v *validation.CustomValidator, logger *zap.Logger) error {
	svc := services.NewMaintenanceService(repo, logger.Named("seed"))
	for _, m := range maintenanceData {
		if err := v.Validate(m.Payload); err != nil {
			return fmt.Errorf("заявка по оборудованию %d: %w", m.Payload.AssetID, err)
		}
		author, err := repo.Users.FindByID(ctx, m.RequestedBy)
		if err != nil {
			return fmt.Errorf("автор заявки %d: %w", m.RequestedBy, err)
		}
		if _, err := svc.CreateRecord(utils.WithUser(ctx, &author), m.Payload); err != nil {
			return err
		}
	}
	return nil
}

func seedCalibration(ctx context.Context, repo *repositories.Registry, v *validation.CustomValidator, logger *zap.Logger) error {
	svc := services.NewCalibrationService(repo, logger.Named("seed"))
	for _, c := range calibrationData {
		if err := v.Validate(c); err != nil {
			return fmt.Errorf("поверка оборудования %d: %w", c.AssetID, err)
		}
		if _, err := svc.CreateRecord(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
