package request

import (
	"fieldservice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ClientRequest carries exactly one of LegalEntity / NaturalPerson, selected
// by Type.
type ClientRequest struct {
	Type          entities.ClientKind     `json:"type" binding:"required"`
	LegalEntity   *entities.LegalEntity   `json:"legalEntity"`
	NaturalPerson *entities.NaturalPerson `json:"naturalPerson"`
	Address       entities.Address        `json:"address"`
	Contact       entities.Contact        `json:"contact"`
}

func (r ClientRequest) ToEntity() entities.Client {
	return entities.Client{
		Kind:          r.Type,
		LegalEntity:   r.LegalEntity,
		NaturalPerson: r.NaturalPerson,
		Address:       r.Address,
		Contact:       r.Contact,
	}
}

type ProductRequest struct {
	SKU             string          `json:"sku"`
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	UnitOfMeasure   string          `json:"unitOfMeasure"`
	QuantityInStock int             `json:"quantityInStock"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	SellingPrice    decimal.Decimal `json:"sellingPrice"`
	Supplier        string          `json:"supplier"`
}

func (r ProductRequest) ToEntity() entities.Product {
	return entities.Product{
		SKU:             r.SKU,
		Name:            r.Name,
		Description:     r.Description,
		Category:        r.Category,
		UnitOfMeasure:   r.UnitOfMeasure,
		QuantityInStock: r.QuantityInStock,
		CostPrice:       r.CostPrice,
		SellingPrice:    r.SellingPrice,
		Supplier:        r.Supplier,
	}
}
