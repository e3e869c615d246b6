package handlers

import (
	"github.com/rpaiva/warehouse-tracker/internal/inventory"
	"github.com/rpaiva/warehouse-tracker/internal/logger"
	"github.com/rpaiva/warehouse-tracker/internal/repo"
)

var (
	catalogRepo  repo.CatalogRepository
	movementRepo repo.MovementRepository
	inventorySvc *inventory.Service
	log          *logger.Logger
)

func SetCatalogRepo(r repo.CatalogRepository) {
	catalogRepo = r
}

func SetMovementRepo(r repo.MovementRepository) {
	movementRepo = r
}

func SetInventoryService(s *inventory.Service) {
	inventorySvc = s
}

func SetLogger(l *logger.Logger) {
	log = l
}
