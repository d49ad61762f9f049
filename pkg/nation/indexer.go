package nation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bitnation/pangea-core/internal/metrics"
	"github.com/bitnation/pangea-core/pkg/db"
)

// Index reconciles local nation records against the chain. It walks the
// NationCreated logs strictly in order, one chain call at a time with a
// fixed delay in between, so a cheap RPC endpoint is never hammered.
//
// Three things happen per sweep: creation hashes are matched back to local
// submissions to backfill their on-chain ids, on-chain nations unknown to
// this device are created locally from contract metadata, and citizen counts
// plus the account's memberships are refreshed.
func (s *Service) Index(ctx context.Context) error {
	created, err := s.chain.FilterNationCreated(ctx, s.fromBlock, 0)
	if err != nil {
		return fmt.Errorf("failed to fetch creation logs: %w", err)
	}

	for _, event := range created {
		if err := s.indexCreated(ctx, event.NationID, event.TxHash); err != nil {
			s.logger.Warn("failed to index nation creation",
				zap.Int64("contract_id", event.NationID),
				zap.String("tx_hash", event.TxHash),
				zap.Error(err))
			metrics.NationsIndexed.WithLabelValues("error").Inc()
		}
		if err := s.pause(ctx); err != nil {
			return err
		}
	}

	return s.refreshChainData(ctx)
}

// indexCreated handles one NationCreated log.
func (s *Service) indexCreated(ctx context.Context, contractID int64, txHash string) error {
	// a local submission waiting for its on-chain id?
	local, err := s.store.NationByTxHashAndType(ctx, txHash, db.JobTypeNationCreate)
	if err != nil {
		return err
	}
	if local != nil {
		if local.IDInSmartContract >= 0 {
			return nil
		}
		if err := s.store.SetNationContractID(ctx, local.ID, contractID); err != nil {
			return err
		}
		s.logger.Info("backfilled on-chain id",
			zap.Int64("id", local.ID),
			zap.Int64("contract_id", contractID))
		metrics.NationsIndexed.WithLabelValues("backfilled").Inc()
		return nil
	}

	known, err := s.store.NationByContractID(ctx, contractID)
	if err != nil {
		return err
	}
	if known != nil {
		metrics.NationsIndexed.WithLabelValues("known").Inc()
		return nil
	}

	// a nation created by someone else; adopt it from contract metadata
	meta, err := s.chain.GetNationMetaData(ctx, contractID)
	if err != nil {
		return err
	}
	if err := s.pause(ctx); err != nil {
		return err
	}

	var input DraftInput
	if err := json.Unmarshal([]byte(meta), &input); err != nil {
		return err
	}

	n := &db.Nation{
		IDInSmartContract:       contractID,
		Created:                 true,
		NationName:              input.NationName,
		NationDescription:       input.NationDescription,
		Exists:                  input.Exists,
		VirtualNation:           input.VirtualNation,
		NationCode:              input.NationCode,
		LawEnforcementMechanism: input.LawEnforcementMechanism,
		Profit:                  input.Profit,
		NonCitizenUse:           input.NonCitizenUse,
		DiplomaticRecognition:   input.DiplomaticRecognition,
		DecisionMakingProcess:   input.DecisionMakingProcess,
		GovernanceService:       input.GovernanceService,
		StateMutateAllowed:      true,
	}
	if err := s.store.CreateNation(ctx, n); err != nil {
		return err
	}

	s.logger.Info("adopted on-chain nation",
		zap.Int64("id", n.ID),
		zap.Int64("contract_id", contractID),
		zap.String("name", n.NationName))
	metrics.NationsIndexed.WithLabelValues("discovered").Inc()
	return nil
}

// refreshChainData updates citizens and membership of every nation that has
// an on-chain id.
func (s *Service) refreshChainData(ctx context.Context) error {
	joinedIDs, err := s.chain.GetJoinedNations(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch joined nations: %w", err)
	}
	joined := make(map[int64]bool, len(joinedIDs))
	for _, id := range joinedIDs {
		joined[id] = true
	}

	nations, err := s.store.Nations(ctx)
	if err != nil {
		return fmt.Errorf("loading nations for chain refresh: %w", err)
	}

	for _, n := range nations {
		if n.IDInSmartContract < 0 {
			continue
		}

		citizens, err := s.chain.GetNumCitizens(ctx, n.IDInSmartContract)
		if err != nil {
			s.logger.Warn("failed to refresh citizen count",
				zap.Int64("id", n.ID),
				zap.Error(err))
			continue
		}
		if err := s.pause(ctx); err != nil {
			return err
		}

		if err := s.store.UpdateNationChainData(ctx, n.ID, citizens, joined[n.IDInSmartContract]); err != nil {
			s.logger.Warn("failed to store refreshed chain data",
				zap.Int64("id", n.ID),
				zap.Error(err))
		}
		metrics.NationsIndexed.WithLabelValues("refreshed").Inc()
	}
	return nil
}

// pause waits the configured inter-call delay, giving up early when the
// context ends.
func (s *Service) pause(ctx context.Context) error {
	if s.callDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.callDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
