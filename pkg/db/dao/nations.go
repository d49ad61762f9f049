package dao

import (
	"github.com/uptrace/bun"
)

// NationDao is a data access object that maps directly to the 'nations' table.
// The id is assigned locally at draft-save time; id_in_smart_contract stays -1
// until the indexer confirms on-chain existence.
type NationDao struct {
	bun.BaseModel           `bun:"table:nations,alias:n"`
	ID                      int64              `bun:"id,pk"`
	IDInSmartContract       int64              `bun:"id_in_smart_contract,notnull"`
	TxID                    *int64             `bun:"tx_id"`
	Tx                      *TransactionJobDao `bun:"rel:belongs-to,join:tx_id=id"`
	Created                 bool               `bun:"created,notnull"`
	NationName              string             `bun:"nation_name,notnull"`
	NationDescription       string             `bun:"nation_description,notnull"`
	Exists                  bool               `bun:"exists,notnull"`
	VirtualNation           bool               `bun:"virtual_nation,notnull"`
	NationCode              string             `bun:"nation_code,notnull"`
	LawEnforcementMechanism string             `bun:"law_enforcement_mechanism,notnull"`
	Profit                  bool               `bun:"profit,notnull"`
	NonCitizenUse           bool               `bun:"non_citizen_use,notnull"`
	DiplomaticRecognition   bool               `bun:"diplomatic_recognition,notnull"`
	DecisionMakingProcess   string             `bun:"decision_making_process,notnull"`
	GovernanceService       string             `bun:"governance_service,notnull"`
	Citizens                int64              `bun:"citizens,notnull"`
	Joined                  bool               `bun:"joined,notnull"`
	StateMutateAllowed      bool               `bun:"state_mutate_allowed,notnull"`
}
