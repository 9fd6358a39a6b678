package model

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListReaders struct {
	Paging `json:",inline"`
	Items  []Reader `json:"items"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []Book `json:"items"`
}

type Reader struct {
	ID               int64  `json:"id" db:"id"`
	Name             string `json:"name" db:"name"`
	Email            string `json:"email" db:"email"`
	Phone            string `json:"phone" db:"phone_number"`
	RegistrationDate Date   `json:"registrationDate" db:"registration_date"`
}

type CreateReaderRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
	Phone string `json:"phone" validate:"max=20"`
}

type UpdateReaderRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email *string `json:"email" validate:"omitempty,email,max=255"`
	Phone *string `json:"phone" validate:"omitempty,max=20"`
}

type ReaderFilter struct {
	// Search matches name, email or phone, case-insensitive.
	Search string
	Page   int
	Size   int
}

type Genre struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type GenreRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type Book struct {
	ID          int64   `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Author      string  `json:"author" db:"author"`
	ISBN        *string `json:"isbn,omitempty" db:"isbn"`
	Year        *int    `json:"year,omitempty" db:"publish_year"`
	Description string  `json:"description" db:"description"`
	Genres      []Genre `json:"genres" db:"-"`
}

type CreateBookRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Author      string  `json:"author" validate:"max=255"`
	ISBN        *string `json:"isbn" validate:"omitempty,min=1,max=20"`
	Year        *int    `json:"year" validate:"omitempty,min=0,max=9999"`
	Description string  `json:"description"`
	GenreIDs    []int64 `json:"genreIds"`
}

type UpdateBookRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Author      *string `json:"author" validate:"omitempty,max=255"`
	ISBN        *string `json:"isbn" validate:"omitempty,min=1,max=20"`
	Year        *int    `json:"year" validate:"omitempty,min=0,max=9999"`
	Description *string `json:"description"`
}

type BookFilter struct {
	Title         string
	Author        string
	Genre         string
	AvailableOnly bool
	Page          int
	Size          int
}

type Condition string

const (
	ConditionExcellent Condition = "EXCELLENT"
	ConditionGood      Condition = "GOOD"
	ConditionBad       Condition = "BAD"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionBad:
		return true
	}
	return false
}

type BookCopy struct {
	ID              int64     `json:"id" db:"id"`
	BookID          int64     `json:"bookId" db:"book_id"`
	InventoryNumber string    `json:"inventoryNumber" db:"inventory_number"`
	Condition       Condition `json:"condition" db:"condition"`
	Location        string    `json:"location" db:"location"`
	Available       bool      `json:"available" db:"available"`
}

type CreateCopyRequest struct {
	BookID          int64     `json:"-"`
	InventoryNumber string    `json:"inventoryNumber" validate:"required,max=50"`
	Condition       Condition `json:"condition" validate:"omitempty,oneof=EXCELLENT GOOD BAD"`
	Location        string    `json:"location" validate:"max=100"`
}

type UpdateCopyRequest struct {
	Condition *Condition `json:"condition" validate:"omitempty,oneof=EXCELLENT GOOD BAD"`
	Location  *string    `json:"location" validate:"omitempty,max=100"`
}

// CopyFilter matches inventory number and location by substring, case-insensitively.
type CopyFilter struct {
	BookID          int64
	InventoryNumber string
	Condition       Condition
	Location        string
	AvailableOnly   bool
}

type CopyStats struct {
	Total       int               `json:"total" db:"total"`
	Available   int               `json:"available" db:"available"`
	Unavailable int               `json:"unavailable" db:"unavailable"`
	ByCondition map[Condition]int `json:"byCondition" db:"-"`
}

// NewConditionCounts has a zero entry for every known condition.
func NewConditionCounts() map[Condition]int {
	return map[Condition]int{
		ConditionExcellent: 0,
		ConditionGood:      0,
		ConditionBad:       0,
	}
}

type Librarian struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	HireDate     Date   `json:"hireDate" db:"hire_date"`
	Position     string `json:"position" db:"position"`
}

type CreateLibrarianRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Position string `json:"position" validate:"max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	Librarian Librarian `json:"librarian"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=72"`
}
