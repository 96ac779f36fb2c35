package model

// Branch : справочник отделений, заполняется извне
type Branch struct {
	BranchName  string `db:"branch_name" json:"branch_name"`
	BranchCode  string `db:"branch_code" json:"branch_code"`
	RoutingCode string `db:"routing_code" json:"routing_code"`
}

// AccountType : справочник типов счетов, заполняется извне
type AccountType struct {
	AccountTypeName string `db:"account_type_name" json:"account_type_name"`
	AccountTypeCode string `db:"account_type_code" json:"account_type_code"`
}
