package schema

// AllModels returns all schema models for GORM AutoMigrate. squadcheck
// itself never migrates, the models are used to build fixture databases.
func AllModels() []any {
	return []any{
		&Player{},
		&Match{},
		&Appearance{},
		&StaffMember{},
	}
}
