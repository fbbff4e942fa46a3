package account

// Account represents an account row in the database.
type Account struct {
	ID       int    `gorm:"column:account_id;primaryKey;autoIncrement"`
	Username string `gorm:"column:username;type:varchar(255);not null;uniqueIndex"`
	Password string `gorm:"column:password;type:varchar(255);not null"`
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "account"
}
