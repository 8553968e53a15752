package domain

type RoleType string

const (
	RoleAdmin          RoleType = "admin"
	RoleCustomer       RoleType = "customer"
	RoleProductManager RoleType = "product_manager"
	RoleModerator      RoleType = "moderator"
)

type ReviewStatusType string

const (
	ReviewStatusApproved ReviewStatusType = "approved"
	ReviewStatusFlagged  ReviewStatusType = "flagged"
)
