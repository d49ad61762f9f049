package db

import (
	"time"
)

// JobStatus represents the lifecycle state of a transaction job.
type JobStatus int

const (
	JobStatusPending JobStatus = 200
	JobStatusSuccess JobStatus = 300
	JobStatusFailed  JobStatus = 400
)

// JobType identifies the kind of on-chain action a transaction job tracks.
type JobType string

const (
	JobTypeNationCreate JobType = "NATION_CREATE"
	JobTypeNationJoin   JobType = "NATION_JOIN"
	JobTypeNationLeave  JobType = "NATION_LEAVE"
	JobTypeEthSend      JobType = "ETH_SEND"
)

// JobTypes lists every accepted transaction job type.
var JobTypes = []JobType{
	JobTypeNationCreate,
	JobTypeNationJoin,
	JobTypeNationLeave,
	JobTypeEthSend,
}

// ValidJobType reports whether t is one of the accepted job types.
func ValidJobType(t JobType) bool {
	for _, known := range JobTypes {
		if t == known {
			return true
		}
	}
	return false
}

// TransactionJob tracks a single broadcast transaction until its receipt
// settles it as succeeded or failed.
type TransactionJob struct {
	ID        int64     `json:"id"`
	TxHash    string    `json:"txHash"`
	Status    JobStatus `json:"status"`
	Type      JobType   `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// Pending reports whether the job is still waiting for a receipt.
func (j *TransactionJob) Pending() bool {
	return j.Status == JobStatusPending
}

// Nation is the locally stored record of a nation, either a draft that only
// exists on this device or one confirmed on chain. IDInSmartContract is -1
// until the chain assigns an id.
type Nation struct {
	ID                      int64  `json:"id"`
	IDInSmartContract       int64  `json:"idInSmartContract"`
	TxID                    *int64 `json:"txId,omitempty"`
	Created                 bool   `json:"created"`
	NationName              string `json:"nationName"`
	NationDescription       string `json:"nationDescription"`
	Exists                  bool   `json:"exists"`
	VirtualNation           bool   `json:"virtualNation"`
	NationCode              string `json:"nationCode"`
	LawEnforcementMechanism string `json:"lawEnforcementMechanism"`
	Profit                  bool   `json:"profit"`
	NonCitizenUse           bool   `json:"nonCitizenUse"`
	DiplomaticRecognition   bool   `json:"diplomaticRecognition"`
	DecisionMakingProcess   string `json:"decisionMakingProcess"`
	GovernanceService       string `json:"governanceService"`
	Citizens                int64  `json:"citizens"`
	Joined                  bool   `json:"joined"`
	StateMutateAllowed      bool   `json:"stateMutateAllowed"`
}

// Draft reports whether the nation only exists locally.
func (n *Nation) Draft() bool {
	return n.IDInSmartContract < 0 && !n.Created
}

// MessageJob is a queued user-facing message. Msg is a translation key and
// Params a JSON object with the values to interpolate into it.
type MessageJob struct {
	ID        int64     `json:"id"`
	Msg       string    `json:"msg"`
	Params    string    `json:"params"`
	Interpret bool      `json:"interpret"`
	Display   bool      `json:"display"`
	Heading   string    `json:"heading,omitempty"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
}

// AccountBalance is the last synced balance of a tracked address.
// Amount is a decimal string in wei.
type AccountBalance struct {
	ID       string    `json:"id"`
	Address  string    `json:"address"`
	Amount   string    `json:"amount"`
	Currency string    `json:"currency"`
	SyncedAt time.Time `json:"syncedAt"`
}
