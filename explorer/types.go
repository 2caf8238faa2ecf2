package explorer

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/bsv-blockchain/go-sdk/chainhash"
)

// UnspentOutput is one spendable output discovered at an address, paired with
// the raw encoding of the transaction that created it. It is an immutable value.
type UnspentOutput struct {
	confirmed   bool
	txID        string
	outputIndex uint32
	amountMinor *big.Int
	txHex       string
}

// NewUnspentOutput builds a record from its parts. amountMinor is copied.
func NewUnspentOutput(confirmed bool, txID string, outputIndex uint32, amountMinor *big.Int, txHex string) UnspentOutput {
	amount := new(big.Int)
	if amountMinor != nil {
		amount.Set(amountMinor)
	}
	return UnspentOutput{
		confirmed:   confirmed,
		txID:        txID,
		outputIndex: outputIndex,
		amountMinor: amount,
		txHex:       txHex,
	}
}

// Confirmed reports whether the parent transaction was confirmed at query time.
func (u UnspentOutput) Confirmed() bool { return u.confirmed }

// TxID is the parent transaction id as returned by the explorer.
func (u UnspentOutput) TxID() string { return u.txID }

// OutputIndex is the position of the output in the parent's output list.
func (u UnspentOutput) OutputIndex() uint32 { return u.outputIndex }

// Amount is the value in coins with exactly 8 fractional digits.
func (u UnspentOutput) Amount() string { return FormatAmount(u.amountMinor) }

// AmountMinorUnits is the exact value in the smallest unit. The returned value
// is a copy.
func (u UnspentOutput) AmountMinorUnits() *big.Int {
	if u.amountMinor == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(u.amountMinor)
}

// TransactionHex is the full raw parent transaction, hex encoded.
func (u UnspentOutput) TransactionHex() string { return u.txHex }

// ParentHash parses TxID as a display-order transaction hash, the form
// transaction builders need for an outpoint.
func (u UnspentOutput) ParentHash() (*chainhash.Hash, error) {
	h, err := chainhash.NewHashFromHex(u.txID)
	if err != nil {
		return nil, fmt.Errorf("explorer: parse txid %q: %w", u.txID, err)
	}
	return h, nil
}

type unspentOutputJSON struct {
	Confirmed        bool     `json:"confirmed"`
	TransactionID    string   `json:"transactionId"`
	OutputIndex      uint32   `json:"outputIndex"`
	Amount           string   `json:"amount"`
	AmountMinorUnits *big.Int `json:"amountMinorUnits"`
	TransactionHex   string   `json:"transactionHex"`
}

// MarshalJSON encodes the record with amountMinorUnits as an exact JSON number.
func (u UnspentOutput) MarshalJSON() ([]byte, error) {
	return json.Marshal(unspentOutputJSON{
		Confirmed:        u.confirmed,
		TransactionID:    u.txID,
		OutputIndex:      u.outputIndex,
		Amount:           u.Amount(),
		AmountMinorUnits: u.AmountMinorUnits(),
		TransactionHex:   u.txHex,
	})
}

// FeeEstimate is a fee rate in minor units per virtual byte, rounded up.
type FeeEstimate uint64

// BroadcastReceipt is the explorer's acknowledgement of a broadcast, verbatim.
// Esplora answers with the transaction id.
type BroadcastReceipt []byte

func (r BroadcastReceipt) String() string { return string(r) }

// utxoDescriptor is one entry of the /address/{address}/utxo listing.
type utxoDescriptor struct {
	TxID   string   `json:"txid"`
	Vout   uint32   `json:"vout"`
	Value  *big.Int `json:"value"`
	Status struct {
		Confirmed bool `json:"confirmed"`
	} `json:"status"`
}
