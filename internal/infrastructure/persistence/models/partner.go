package models

import (
	"github.com/gstbill/backend/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer entity.
type CustomerModel struct {
	BaseModel
	Name      string `gorm:"type:varchar(200);not null;uniqueIndex:idx_customers_name"`
	Address   string `gorm:"type:varchar(500)"`
	GSTNumber string `gorm:"type:varchar(20)"`
	Contact   string `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Address:    m.Address,
		GSTNumber:  m.GSTNumber,
		Contact:    m.Contact,
	}
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Address = c.Address
	m.GSTNumber = c.GSTNumber
	m.Contact = c.Contact
	return m
}

// CompanyModel is the persistence model for the Company entity.
type CompanyModel struct {
	BaseModel
	Name      string `gorm:"type:varchar(200);not null;uniqueIndex:idx_companies_name"`
	GSTNumber string `gorm:"type:varchar(20)"`
	Contact   string `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company entity.
func (m *CompanyModel) ToDomain() *partner.Company {
	return &partner.Company{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		GSTNumber:  m.GSTNumber,
		Contact:    m.Contact,
	}
}

// CompanyModelFromDomain creates a new persistence model from a domain Company entity.
func CompanyModelFromDomain(c *partner.Company) *CompanyModel {
	m := &CompanyModel{}
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.GSTNumber = c.GSTNumber
	m.Contact = c.Contact
	return m
}
