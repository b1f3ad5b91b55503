package schema

// AccountUserTable represents the 'accounts.users' table
type AccountUserTable struct {
	Table        string
	ID           string
	Username     string
	Email        string
	FullName     string
	PasswordHash string
	RefreshToken string
	CreatedAt    string
	UpdatedAt    string
}

// AccountUser is the schema definition for accounts.users
var AccountUser = AccountUserTable{
	Table:        "accounts.users",
	ID:           "id",
	Username:     "username",
	Email:        "email",
	FullName:     "fullname",
	PasswordHash: "passwordhash",
	RefreshToken: "refreshtoken",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns every column in scan order.
func (t AccountUserTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Email, t.FullName, t.PasswordHash,
		t.RefreshToken, t.CreatedAt, t.UpdatedAt,
	}
}

// Identity returns the columns that may appear in an identity lookup.
func (t AccountUserTable) Identity() []string {
	return []string{t.Username, t.Email}
}
