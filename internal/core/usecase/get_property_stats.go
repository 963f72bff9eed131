package usecase

import (
	"context"
	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"
)

type GetPropertyStatsUseCase struct {
	storage port.PropertyStoragePort
}

func NewGetPropertyStatsUseCase(storage port.PropertyStoragePort) *GetPropertyStatsUseCase {
	return &GetPropertyStatsUseCase{storage: storage}
}

func (uc *GetPropertyStatsUseCase) Execute(ctx context.Context) (*domain.PropertyStats, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetPropertyStats"})

	stats, err := uc.storage.GetStats(ctx)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Debug("Use case finished successfully", port.Fields{"total": stats.Total})
	return stats, nil
}
