package txqueue

import (
	"context"

	"github.com/bitnation/pangea-core/pkg/apperrors"
	"github.com/bitnation/pangea-core/pkg/db"
	"github.com/bitnation/pangea-core/pkg/ethereum"
	"github.com/bitnation/pangea-core/pkg/msgqueue"
)

// Heading keys under which settlement messages are displayed.
const (
	nationHeading      = "nation.heading"
	transactionHeading = "transaction.heading"
)

// dispatch routes a mined job to the handler for its type. The handler
// resolves the job in the store and returns the message to queue, if any.
func (q *Queue) dispatch(ctx context.Context, job *db.TransactionJob, receipt *ethereum.Receipt) (*msgqueue.Msg, error) {
	switch job.Type {
	case db.JobTypeNationCreate:
		return q.settleNationJob(ctx, job, receipt, "nation.create")
	case db.JobTypeNationJoin:
		return q.settleNationJob(ctx, job, receipt, "nation.join")
	case db.JobTypeNationLeave:
		return q.settleNationJob(ctx, job, receipt, "nation.leave")
	case db.JobTypeEthSend:
		return q.settleEthSend(ctx, job, receipt)
	default:
		return nil, apperrors.NoProcessorForType(string(job.Type))
	}
}

// settleNationJob resolves a nation-linked job. Resolving also releases the
// nation's mutation lock so the user can act on it again.
func (q *Queue) settleNationJob(
	ctx context.Context,
	job *db.TransactionJob,
	receipt *ethereum.Receipt,
	keyPrefix string,
) (*msgqueue.Msg, error) {
	nation, err := q.store.NationByJobID(ctx, job.ID)
	if err != nil {
		return nil, apperrors.WriteFailed(err)
	}
	if nation == nil {
		return nil, apperrors.JobMissingNationLink(job.TxHash)
	}

	status := db.JobStatusFailed
	key := keyPrefix + ".failed"
	if receipt.Succeeded() {
		status = db.JobStatusSuccess
		key = keyPrefix + ".succeed"
	}

	if err := q.store.ResolveTransactionJob(ctx, job.ID, status); err != nil {
		return nil, apperrors.WriteFailed(err)
	}
	job.Status = status

	params := map[string]any{"nationName": nation.NationName}
	return msgqueue.NewMsg(key, params, true).Display(nationHeading), nil
}

// settleEthSend resolves a plain value transfer. The stored job only has the
// hash, so sender, recipient and amount come from the raw transaction.
func (q *Queue) settleEthSend(ctx context.Context, job *db.TransactionJob, receipt *ethereum.Receipt) (*msgqueue.Msg, error) {
	info, err := q.chain.TransactionInfo(ctx, job.TxHash)
	if err != nil {
		return nil, err
	}

	status := db.JobStatusFailed
	key := "transaction.eth_send.failed"
	if receipt.Succeeded() {
		status = db.JobStatusSuccess
		key = "transaction.eth_send.succeed"
	}

	if err := q.store.ResolveTransactionJob(ctx, job.ID, status); err != nil {
		return nil, apperrors.WriteFailed(err)
	}
	job.Status = status

	params := map[string]any{
		"from":   info.From,
		"to":     info.To,
		"value":  ethereum.WeiToEther(info.Value).String(),
		"txHash": job.TxHash,
	}
	return msgqueue.NewMsg(key, params, true).Display(transactionHeading), nil
}
