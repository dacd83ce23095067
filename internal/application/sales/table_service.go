package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/sales"
	"github.com/pos/backend/internal/domain/shared"
)

// TableService handles dining table business operations
type TableService struct {
	tableRepo sales.TableRepository
}

// NewTableService creates a new TableService
func NewTableService(tableRepo sales.TableRepository) *TableService {
	return &TableService{tableRepo: tableRepo}
}

// Create creates a new table
func (s *TableService) Create(ctx context.Context, req CreateTableRequest) (*TableResponse, error) {
	table, err := sales.NewTable(req.Number, req.Seats)
	if err != nil {
		return nil, err
	}

	if err := s.tableRepo.Save(ctx, table); err != nil {
		return nil, err
	}

	response := ToTableResponse(table)
	return &response, nil
}

// GetByID retrieves a table by ID
func (s *TableService) GetByID(ctx context.Context, id uuid.UUID) (*TableResponse, error) {
	table, err := s.tableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToTableResponse(table)
	return &response, nil
}

// List retrieves all tables
func (s *TableService) List(ctx context.Context, page, pageSize int) (*shared.Paginated[TableResponse], error) {
	domainFilter := shared.DefaultFilter()
	if page > 0 {
		domainFilter.Page = page
	}
	if pageSize > 0 {
		domainFilter.PageSize = pageSize
	}
	domainFilter.OrderBy = "number"
	domainFilter.OrderDir = "asc"

	tables, err := s.tableRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.tableRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	paginated := shared.NewPaginated(ToTableResponses(tables), total, domainFilter.Page, domainFilter.PageSize)
	return &paginated, nil
}

// Update updates a table's fields
func (s *TableService) Update(ctx context.Context, id uuid.UUID, req UpdateTableRequest) (*TableResponse, error) {
	table, err := s.tableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	number := table.Number
	if req.Number != nil {
		number = *req.Number
	}
	seats := table.Seats
	if req.Seats != nil {
		seats = *req.Seats
	}
	occupied := table.Occupied
	if req.Occupied != nil {
		occupied = *req.Occupied
	}

	if err := table.Update(number, seats, occupied); err != nil {
		return nil, err
	}

	if err := s.tableRepo.Save(ctx, table); err != nil {
		return nil, err
	}

	response := ToTableResponse(table)
	return &response, nil
}

// Delete deletes a table
func (s *TableService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tableRepo.Delete(ctx, id)
}
