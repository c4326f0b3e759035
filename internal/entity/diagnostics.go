package entity

import "time"

// DatabaseStatistics is the aggregate view over the contacts table, recomputed on every read.
// Counts travel as JSON strings, the way the store's driver reports bigint aggregates.
type DatabaseStatistics struct {
	TotalContacts       int64      `json:"total_contacts,string"`
	ContactsWithCompany int64      `json:"contacts_with_company,string"`
	FirstContact        *time.Time `json:"first_contact"`
	LatestContact       *time.Time `json:"latest_contact"`
}

// ColumnDescriptor describes one column of the contacts table as reported by the catalog.
type ColumnDescriptor struct {
	ColumnName string `json:"column_name"`
	DataType   string `json:"data_type"`
	IsNullable string `json:"is_nullable"`
}

// DatabaseSnapshot is everything the diagnostics page shows, read over one connection.
type DatabaseSnapshot struct {
	Contacts       []ContactDetail    `json:"contacts"`
	Statistics     DatabaseStatistics `json:"statistics"`
	TableStructure []ColumnDescriptor `json:"table_structure"`
}
