package rbac

type PolicyRow struct {
	ID       string `gorm:"primaryKey;type:varchar(36)"`
	Role     string `gorm:"size:32;not null;uniqueIndex:uq_rbac_policy"`
	Resource string `gorm:"size:64;not null;uniqueIndex:uq_rbac_policy"`
	Action   string `gorm:"size:64;not null;uniqueIndex:uq_rbac_policy"`
}

func (PolicyRow) TableName() string {
	return "rbac_policies"
}
