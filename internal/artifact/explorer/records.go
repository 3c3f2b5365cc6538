package explorer

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/abi"
	"github.com/goodnatureofminers/artifactscan-backend/internal/artifact/model"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type txListRecord struct {
	BlockNumber string `json:"blockNumber"`
	TimeStamp   string `json:"timeStamp"`
	Hash        string `json:"hash"`
	From        string `json:"from"`
	To          string `json:"to"`
	Input       string `json:"input"`
	GasUsed     string `json:"gasUsed"`
	IsError     string `json:"isError"`
}

func (r txListRecord) toModel() (model.Transaction, error) {
	block, err := ParseQuantity(r.BlockNumber)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s block number: %w", r.Hash, err)
	}
	input, err := abi.ParseHex(r.Input)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s input: %w", r.Hash, err)
	}
	return model.Transaction{
		Hash:        common.HexToHash(r.Hash),
		From:        common.HexToAddress(r.From),
		To:          common.HexToAddress(r.To),
		BlockNumber: block,
		Timestamp:   parseTimestamp(r.TimeStamp),
		GasUsed:     parseOptionalQuantity(r.GasUsed),
		Input:       input,
		Failed:      r.IsError == "1",
	}, nil
}

type proxyTxRecord struct {
	BlockNumber string `json:"blockNumber"`
	Hash        string `json:"hash"`
	From        string `json:"from"`
	To          string `json:"to"`
	Input       string `json:"input"`
	Gas         string `json:"gas"`
}

func (r proxyTxRecord) toModel() (model.Transaction, error) {
	var block uint64
	if r.BlockNumber != "" {
		b, err := ParseQuantity(r.BlockNumber)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("tx %s block number: %w", r.Hash, err)
		}
		block = b
	}
	input, err := abi.ParseHex(r.Input)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("tx %s input: %w", r.Hash, err)
	}
	return model.Transaction{
		Hash:        common.HexToHash(r.Hash),
		From:        common.HexToAddress(r.From),
		To:          common.HexToAddress(r.To),
		BlockNumber: block,
		GasUsed:     parseOptionalQuantity(r.Gas),
		Input:       input,
	}, nil
}

type logRecord struct {
	Address         string   `json:"address"`
	Topics          []string `json:"topics"`
	Data            string   `json:"data"`
	BlockNumber     string   `json:"blockNumber"`
	TimeStamp       string   `json:"timeStamp"`
	LogIndex        string   `json:"logIndex"`
	TransactionHash string   `json:"transactionHash"`
}

func (r logRecord) toModel() (model.Log, error) {
	block, err := ParseQuantity(r.BlockNumber)
	if err != nil {
		return model.Log{}, fmt.Errorf("log %s block number: %w", r.TransactionHash, err)
	}
	data, err := abi.ParseHex(r.Data)
	if err != nil {
		return model.Log{}, fmt.Errorf("log %s data: %w", r.TransactionHash, err)
	}
	topics := make([]common.Hash, 0, len(r.Topics))
	for _, t := range r.Topics {
		if t == "" {
			continue
		}
		topics = append(topics, common.HexToHash(t))
	}
	return model.Log{
		Address:     common.HexToAddress(r.Address),
		Topics:      topics,
		Data:        data,
		BlockNumber: block,
		LogIndex:    parseOptionalQuantity(r.LogIndex),
		TxHash:      common.HexToHash(r.TransactionHash),
		Timestamp:   parseTimestamp(r.TimeStamp),
	}, nil
}
