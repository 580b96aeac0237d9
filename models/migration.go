package models

// Migration is one row of the schema-migrations ledger, keyed by the
// leading number of the migration file.
type Migration struct {
	Number   int64  `gorm:"column:number;primaryKey" json:"number"`
	Filename string `gorm:"column:filename" json:"filename"`
	RunAt    string `gorm:"column:run_at" json:"runAt"`
}

func (Migration) TableName() string {
	return "migrations"
}
