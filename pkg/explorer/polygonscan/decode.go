package polygonscan

import (
	"creditscore/pkg/domain"
	"creditscore/pkg/serrors"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"
)

// envelope is the {status, message, result} wrapper of every Etherscan-style
// response. result is either a list of transactions or an error string.
type envelope struct {
	Status     string
	Message    string
	Result     []domain.Transaction
	ResultText string
}

func (e envelope) transactions() ([]domain.Transaction, error) {
	if e.Status == "1" {
		if e.Result == nil {
			return []domain.Transaction{}, nil
		}

		return e.Result, nil
	}

	text := e.ResultText
	if text == "" {
		text = e.Message
	}
	lower := strings.ToLower(text)

	switch {
	case strings.HasPrefix(strings.ToLower(e.Message), "no transactions found"):
		return []domain.Transaction{}, nil
	case strings.Contains(lower, "rate limit"):
		return nil, serrors.With(serrors.ErrRateLimited, "explorer: %s", text)
	case strings.Contains(lower, "invalid api key") || strings.Contains(lower, "missing/invalid api key"):
		return nil, serrors.With(serrors.ErrUnauthorized, "explorer: %s", text)
	case strings.Contains(lower, "invalid address"):
		return nil, serrors.With(serrors.ErrBadRequest, "explorer: %s", text)
	default:
		return nil, serrors.With(serrors.ErrUnavailable, "explorer: %s: %s", e.Message, text)
	}
}

func decodeEnvelope(b []byte, account common.Address) (envelope, error) {
	var env envelope
	d := jx.DecodeBytes(b)
	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "status":
			s, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "status")
			}
			env.Status = s
		case "message":
			s, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "message")
			}
			env.Message = s
		case "result":
			switch d.Next() {
			case jx.Array:
				env.Result = []domain.Transaction{}

				return d.Arr(func(d *jx.Decoder) error {
					tx, err := decodeTransaction(d, account)
					if err != nil {
						return errors.Wrapf(err, "result[%d]", len(env.Result))
					}
					env.Result = append(env.Result, tx)

					return nil
				})
			case jx.String:
				s, err := d.Str()
				if err != nil {
					return errors.Wrap(err, "result")
				}
				env.ResultText = s
			default:
				return d.Skip()
			}
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return envelope{}, errors.Wrap(err, "envelope")
	}

	return env, nil
}

func decodeTransaction(d *jx.Decoder, account common.Address) (domain.Transaction, error) {
	tx := domain.Transaction{Account: account}
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if d.Next() != jx.String {
			return d.Skip()
		}
		v, err := d.Str()
		if err != nil {
			return errors.Wrap(err, string(key))
		}

		switch string(key) {
		case "hash":
			tx.Hash = common.HexToHash(v)
		case "blockNumber":
			tx.BlockNumber, err = strconv.ParseUint(v, 10, 64)
		case "timeStamp":
			var sec int64
			sec, err = strconv.ParseInt(v, 10, 64)
			tx.Timestamp = time.Unix(sec, 0).UTC()
		case "from":
			tx.From = common.HexToAddress(v)
		case "to":
			if v != "" {
				to := common.HexToAddress(v)
				tx.To = &to
			}
		case "value":
			tx.Value, err = decimal.NewFromString(v)
		case "gasUsed":
			tx.GasUsed, err = strconv.ParseUint(v, 10, 64)
		case "isError":
			tx.IsError = v == "1"
		case "methodId":
			tx.MethodID = v
		case "functionName":
			tx.FunctionName = v
		}
		if err != nil {
			return errors.Wrap(err, string(key))
		}

		return nil
	})

	return tx, err
}
