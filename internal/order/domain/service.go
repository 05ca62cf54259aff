package domain

import (
	"context"
	"errors"

	sheetdomain "github.com/jaipurwood/prodsheet/internal/sheet/domain"
	"github.com/jaipurwood/prodsheet/pkg/db/pagination"
)

// ItemInput is one order line as submitted by the editing screens.
// A blank ID means a new line.
type ItemInput struct {
	ID          string
	ProductCode string
	Description string
	Category    string

	HeightCM float64
	DepthCM  float64
	WidthCM  float64
	CBM      float64
	CBMAuto  bool

	Quantity          int
	InHouseProduction bool
	MachineHall       string

	LeatherCode  string
	LeatherImage string
	FinishCode   string
	FinishImage  string

	ColorNotes string
	LegColor   string
	WoodFinish string
	Notes      string

	ProductImage    string
	Images          []string
	ReferenceImages []string
}

type CreateRequest struct {
	SalesOrderRef     string
	BuyerPORef        string
	BuyerName         string
	EntryDate         string
	FactoryInformDate string
	Factory           string
	Status            string
	Items             []ItemInput
}

type UpdateRequest struct {
	ID                string
	SalesOrderRef     *string
	BuyerPORef        *string
	BuyerName         *string
	EntryDate         *string
	FactoryInformDate *string
	Factory           *string
	Status            *string
	Items             *[]ItemInput
}

type ListRequest struct {
	Status    string
	Buyer     string
	PageToken string
	PageSize  int
}

type ListResponse struct {
	pagination.PageInfo
	Orders []Order `json:"orders"`
}

type Service interface {
	Create(context.Context, CreateRequest) (Order, error)
	Update(context.Context, UpdateRequest) (Order, error)
	Delete(context.Context, string) error
	Get(context.Context, string) (Order, error)
	List(context.Context, ListRequest) (ListResponse, error)
	View(context.Context, string) (sheetdomain.Order, error)
}

var (
	ErrInvalidSalesRef = errors.New("invalid_sales_order_ref")
	ErrDuplicateRef    = errors.New("duplicate_sales_order_ref")
	ErrInvalidStatus   = errors.New("invalid_status")
	ErrInvalidQuantity = errors.New("invalid_quantity")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
)
