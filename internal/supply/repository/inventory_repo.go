package repository

import (
	"github.com/cozycomfort/supply-api/internal/supply/entity"
	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// --- Manufacturer ---

func (r *InventoryRepository) ListManufacturer() ([]entity.ManufacturerInventory, error) {
	var rows []entity.ManufacturerInventory
	err := r.db.Preload("BlanketModel").
		Joins("JOIN blanket_models ON blanket_models.id = manufacturer_inventories.blanket_model_id").
		Where("blanket_models.is_active = ?", true).
		Find(&rows).Error
	return rows, err
}

func (r *InventoryRepository) GetManufacturerByModel(modelID string) (*entity.ManufacturerInventory, error) {
	var row entity.ManufacturerInventory
	err := r.db.Where("blanket_model_id = ?", modelID).First(&row).Error
	return &row, err
}

func (r *InventoryRepository) UpdateManufacturer(row *entity.ManufacturerInventory) error {
	return r.db.Save(row).Error
}

// --- Distributor ---

func (r *InventoryRepository) ListDistributor(distributorID string) ([]entity.DistributorInventory, error) {
	var rows []entity.DistributorInventory
	err := r.db.Preload("BlanketModel").
		Joins("JOIN blanket_models ON blanket_models.id = distributor_inventories.blanket_model_id").
		Where("distributor_inventories.distributor_id = ? AND blanket_models.is_active = ?", distributorID, true).
		Find(&rows).Error
	return rows, err
}

func (r *InventoryRepository) GetDistributorByModel(distributorID, modelID string) (*entity.DistributorInventory, error) {
	var row entity.DistributorInventory
	err := r.db.Where("distributor_id = ? AND blanket_model_id = ?", distributorID, modelID).First(&row).Error
	return &row, err
}

func (r *InventoryRepository) UpdateDistributor(row *entity.DistributorInventory) error {
	return r.db.Save(row).Error
}

// --- Seller ---

func (r *InventoryRepository) ListSeller(sellerID string) ([]entity.SellerInventory, error) {
	var rows []entity.SellerInventory
	err := r.db.Preload("BlanketModel").
		Joins("JOIN blanket_models ON blanket_models.id = seller_inventories.blanket_model_id").
		Where("seller_inventories.seller_id = ? AND blanket_models.is_active = ?", sellerID, true).
		Find(&rows).Error
	return rows, err
}

func (r *InventoryRepository) GetSellerByModel(sellerID, modelID string) (*entity.SellerInventory, error) {
	var row entity.SellerInventory
	err := r.db.Where("seller_id = ? AND blanket_model_id = ?", sellerID, modelID).First(&row).Error
	return &row, err
}

func (r *InventoryRepository) UpdateSeller(row *entity.SellerInventory) error {
	return r.db.Save(row).Error
}
