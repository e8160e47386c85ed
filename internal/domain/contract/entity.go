// internal/domain/contract/entity.go
package contract

import "time"

type Contract struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	TypeID     int64  `json:"type_id"`
	DealID     *int64 `json:"deal_id,omitempty"`
	ClientName string `json:"client_name"`

	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
	Status   string  `json:"status"` // draft, active, expired, terminated

	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContractType is the catalog entry contracts are classified with, managed
// through its own CRUD modal in the console.
type ContractType struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
