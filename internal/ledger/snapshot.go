package ledger

import (
	"inventory-backend/internal/models"

	"gorm.io/gorm"
)

// Snapshot is the in-memory copy of the five collections the ledger is
// derived from. It is loaded as a whole and passed around explicitly;
// after any mutation the caller is expected to load a fresh one rather
// than patch this one.
type Snapshot struct {
	Parts      []models.Part
	Suppliers  []models.Supplier
	Companies  []models.Company
	Shipments  []models.WarehouseShipment
	Dispatches []models.CompanyDispatch
}

// Load fetches all five collections in store order: master records by
// creation time descending, transactions by business date descending.
func Load(db *gorm.DB) (*Snapshot, error) {
	snap := &Snapshot{}

	if err := db.Order("created_at DESC").Find(&snap.Parts).Error; err != nil {
		return nil, err
	}
	if err := db.Order("created_at DESC").Find(&snap.Suppliers).Error; err != nil {
		return nil, err
	}
	if err := db.Order("created_at DESC").Find(&snap.Companies).Error; err != nil {
		return nil, err
	}
	if err := db.Order("date DESC").Find(&snap.Shipments).Error; err != nil {
		return nil, err
	}
	if err := db.Order("date DESC").Find(&snap.Dispatches).Error; err != nil {
		return nil, err
	}

	return snap, nil
}

// Available returns the quantity still at the supplier for the given part:
// everything shipped in minus everything dispatched out. The result can be
// negative when dispatch writes raced past the availability check; callers
// must not assume it is non-negative.
func (s *Snapshot) Available(supplierID, partID uint) int {
	total := 0
	for _, t := range s.Shipments {
		if t.SupplierID == supplierID && t.PartID == partID {
			total += t.SendQuantity
		}
	}
	for _, t := range s.Dispatches {
		if t.SupplierID == supplierID && t.PartID == partID {
			total -= t.SendQuantity
		}
	}
	return total
}

func (s *Snapshot) partByID(id uint) *models.Part {
	for i := range s.Parts {
		if s.Parts[i].ID == id {
			return &s.Parts[i]
		}
	}
	return nil
}

func (s *Snapshot) supplierByID(id uint) *models.Supplier {
	for i := range s.Suppliers {
		if s.Suppliers[i].ID == id {
			return &s.Suppliers[i]
		}
	}
	return nil
}

func (s *Snapshot) companyByID(id uint) *models.Company {
	for i := range s.Companies {
		if s.Companies[i].ID == id {
			return &s.Companies[i]
		}
	}
	return nil
}
