// Package ethereum wraps the chain RPC connection and the nation registry
// contract behind the calls the queues and the domain service need.
package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/bitnation/pangea-core/pkg/config"
	"github.com/bitnation/pangea-core/pkg/ethereum/contracts"
)

// Client represents an Ethereum client bound to the nation registry contract
type Client struct {
	config     *config.EthereumConfig
	client     *ethclient.Client
	privateKey *ecdsa.PrivateKey
	address    common.Address
	logger     *zap.Logger

	nationAddress common.Address
	nations       *contracts.NationCore
}

// NewClient creates a new Ethereum client
func NewClient(cfg *config.EthereumConfig, logger *zap.Logger) (*Client, error) {
	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}

	privateKey, err := crypto.HexToECDSA(cfg.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}

	address := crypto.PubkeyToAddress(privateKey.PublicKey)
	nationAddress := common.HexToAddress(cfg.NationContract)

	nations, err := contracts.NewNationCore(nationAddress, client)
	if err != nil {
		return nil, fmt.Errorf("failed to load nation contract: %w", err)
	}

	logger.Info("Connected to Ethereum",
		zap.Int64("chain_id", cfg.ChainID),
		zap.String("rpc_url", cfg.RPCURL),
		zap.String("nation_contract", nationAddress.Hex()),
		zap.String("account", address.Hex()))

	return &Client{
		config:        cfg,
		client:        client,
		privateKey:    privateKey,
		address:       address,
		nationAddress: nationAddress,
		nations:       nations,
		logger:        logger,
	}, nil
}

// Close closes the Ethereum client
func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// Address returns the hex address of the signing account
func (c *Client) Address() string {
	return c.address.Hex()
}

// GetTransactor returns a transaction signer
func (c *Client) GetTransactor(ctx context.Context) (*bind.TransactOpts, error) {
	chainID := big.NewInt(c.config.ChainID)

	auth, err := bind.NewKeyedTransactorWithChainID(c.privateKey, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	nonce, err := c.client.PendingNonceAt(ctx, c.address)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	auth.Nonce = big.NewInt(int64(nonce))
	auth.GasLimit = c.config.GasLimit

	if c.config.MaxGasPrice != "" {
		maxGasPrice := new(big.Int)
		maxGasPrice.SetString(c.config.MaxGasPrice, 10)

		gasPrice, err := c.client.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to suggest gas price: %w", err)
		}

		if gasPrice.Cmp(maxGasPrice) > 0 {
			c.logger.Warn("Suggested gas price exceeds maximum",
				zap.String("suggested", gasPrice.String()),
				zap.String("max", maxGasPrice.String()))
			auth.GasPrice = maxGasPrice
		} else {
			auth.GasPrice = gasPrice
		}
	}

	return auth, nil
}

// CreateNation submits a nation creation transaction carrying the nation's
// JSON metadata and returns the transaction hash
func (c *Client) CreateNation(ctx context.Context, nationJSON string) (string, error) {
	auth, err := c.GetTransactor(ctx)
	if err != nil {
		return "", err
	}

	tx, err := c.nations.CreateNation(auth, nationJSON)
	if err != nil {
		return "", fmt.Errorf("failed to submit nation creation: %w", err)
	}

	c.logger.Info("Nation creation submitted",
		zap.String("tx_hash", tx.Hash().Hex()))

	return tx.Hash().Hex(), nil
}

// JoinNation submits a join transaction for the given on-chain nation id
func (c *Client) JoinNation(ctx context.Context, contractID int64) (string, error) {
	auth, err := c.GetTransactor(ctx)
	if err != nil {
		return "", err
	}

	tx, err := c.nations.JoinNation(auth, big.NewInt(contractID))
	if err != nil {
		return "", fmt.Errorf("failed to submit nation join: %w", err)
	}

	c.logger.Info("Nation join submitted",
		zap.Int64("nation_id", contractID),
		zap.String("tx_hash", tx.Hash().Hex()))

	return tx.Hash().Hex(), nil
}

// LeaveNation submits a leave transaction for the given on-chain nation id
func (c *Client) LeaveNation(ctx context.Context, contractID int64) (string, error) {
	auth, err := c.GetTransactor(ctx)
	if err != nil {
		return "", err
	}

	tx, err := c.nations.LeaveNation(auth, big.NewInt(contractID))
	if err != nil {
		return "", fmt.Errorf("failed to submit nation leave: %w", err)
	}

	c.logger.Info("Nation leave submitted",
		zap.Int64("nation_id", contractID),
		zap.String("tx_hash", tx.Hash().Hex()))

	return tx.Hash().Hex(), nil
}

// TransactionReceipt fetches the receipt for a transaction hash. A nil
// receipt with nil error means the transaction is not mined yet.
func (c *Client) TransactionReceipt(ctx context.Context, txHash string) (*Receipt, error) {
	receipt, err := c.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if errors.Is(err, goethereum.NotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch receipt: %w", err)
	}

	return &Receipt{
		TxHash:      receipt.TxHash.Hex(),
		Status:      receipt.Status,
		BlockNumber: receipt.BlockNumber.Uint64(),
	}, nil
}

// TransactionInfo fetches sender, recipient and value of a transaction
func (c *Client) TransactionInfo(ctx context.Context, txHash string) (*TransactionInfo, error) {
	tx, _, err := c.client.TransactionByHash(ctx, common.HexToHash(txHash))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transaction: %w", err)
	}

	from, err := types.Sender(types.LatestSignerForChainID(big.NewInt(c.config.ChainID)), tx)
	if err != nil {
		return nil, fmt.Errorf("failed to recover sender: %w", err)
	}

	info := &TransactionInfo{
		TxHash: txHash,
		From:   from.Hex(),
		Value:  tx.Value(),
	}
	if to := tx.To(); to != nil {
		info.To = to.Hex()
	}
	return info, nil
}

// GetNumCitizens reads the current citizen count of a nation
func (c *Client) GetNumCitizens(ctx context.Context, contractID int64) (int64, error) {
	count, err := c.nations.GetNumCitizens(&bind.CallOpts{Context: ctx}, big.NewInt(contractID))
	if err != nil {
		return 0, fmt.Errorf("failed to read citizen count: %w", err)
	}
	return count.Int64(), nil
}

// GetJoinedNations reads the on-chain ids of the nations the signing account
// is a citizen of
func (c *Client) GetJoinedNations(ctx context.Context) ([]int64, error) {
	ids, err := c.nations.GetJoinedNations(&bind.CallOpts{Context: ctx, From: c.address})
	if err != nil {
		return nil, fmt.Errorf("failed to read joined nations: %w", err)
	}

	joined := make([]int64, len(ids))
	for i, id := range ids {
		joined[i] = id.Int64()
	}
	return joined, nil
}

// GetNationMetaData reads the JSON metadata stored for a nation
func (c *Client) GetNationMetaData(ctx context.Context, contractID int64) (string, error) {
	meta, err := c.nations.GetNationMetaData(&bind.CallOpts{Context: ctx}, big.NewInt(contractID))
	if err != nil {
		return "", fmt.Errorf("failed to read nation metadata: %w", err)
	}
	return meta, nil
}

// GetNationCount reads how many nations the contract has registered
func (c *Client) GetNationCount(ctx context.Context) (int64, error) {
	count, err := c.nations.NationCount(&bind.CallOpts{Context: ctx})
	if err != nil {
		return 0, fmt.Errorf("failed to read nation count: %w", err)
	}
	return count.Int64(), nil
}

// FilterNationCreated retrieves NationCreated events in the block range.
// toBlock 0 means up to the latest block.
func (c *Client) FilterNationCreated(ctx context.Context, fromBlock, toBlock uint64) ([]*NationCreatedEvent, error) {
	opts := &bind.FilterOpts{
		Start:   fromBlock,
		Context: ctx,
	}
	if toBlock > 0 {
		opts.End = &toBlock
	}

	iter, err := c.nations.FilterNationCreated(opts, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to filter nation creations: %w", err)
	}
	defer iter.Close()

	var created []*NationCreatedEvent
	for iter.Next() {
		event := iter.Event
		created = append(created, &NationCreatedEvent{
			NationID:    event.NationId.Int64(),
			Founder:     event.Founder.Hex(),
			BlockNumber: event.Raw.BlockNumber,
			TxHash:      event.Raw.TxHash.Hex(),
		})
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate nation creations: %w", err)
	}

	return created, nil
}

// Balance reads the current wei balance of an address
func (c *Client) Balance(ctx context.Context, address string) (*big.Int, error) {
	balance, err := c.client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}
	return balance, nil
}

// GetLatestBlockNumber gets the latest block number
func (c *Client) GetLatestBlockNumber(ctx context.Context) (uint64, error) {
	header, err := c.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}
