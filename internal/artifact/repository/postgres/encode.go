package postgres

import (
	"encoding/json"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5/pgtype"
)

func nullableJSON(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC()
}

func nullableAddress(a *common.Address) any {
	if a == nil {
		return nil
	}
	return a.Hex()
}

func nullableHash(h *common.Hash) any {
	if h == nil {
		return nil
	}
	return h.Hex()
}

func numeric(v *big.Int) pgtype.Numeric {
	if v == nil {
		return pgtype.Numeric{}
	}
	return pgtype.Numeric{Int: new(big.Int).Set(v), Valid: true}
}

func bigFromNumeric(n pgtype.Numeric) *big.Int {
	if !n.Valid || n.Int == nil {
		return nil
	}
	v := new(big.Int).Set(n.Int)
	switch {
	case n.Exp > 0:
		v.Mul(v, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n.Exp)), nil))
	case n.Exp < 0:
		v.Quo(v, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-n.Exp)), nil))
	}
	return v
}

func addressPtr(s pgtype.Text) *common.Address {
	if !s.Valid {
		return nil
	}
	a := common.HexToAddress(s.String)
	return &a
}

func hashPtr(s pgtype.Text) *common.Hash {
	if !s.Valid {
		return nil
	}
	h := common.HexToHash(s.String)
	return &h
}

func timeOrZero(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time.UTC()
}
