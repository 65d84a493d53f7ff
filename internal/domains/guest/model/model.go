package model

const (
	TableName  = "Users"
	EntityName = "guest"

	FieldUserID = "UserID"
	FieldName   = "Name"
	FieldRank   = "Rank"
	FieldUnit   = "Unit"
)

// Guest is the person a booking is made for. A fresh row is inserted on every
// booking submission; guests are never deduplicated, updated or deleted.
type Guest struct {
	UserID int64  `db:"UserID"`
	Name   string `db:"Name"`
	Rank   string `db:"Rank"`
	Unit   string `db:"Unit"`
}
