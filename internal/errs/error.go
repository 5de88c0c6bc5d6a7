package errs

import (
	"errors"
)

var (
	ErrInvalidParam       = errors.New("[shipsync] invalid param")
	ErrDuplicateCountry   = errors.New("[shipsync] duplicate country code")
	ErrStaleBaseline      = errors.New("[shipsync] shipping settings changed since last load")
	ErrBaselineCacheMiss  = errors.New("[shipsync] shipping baseline cache miss")
	ErrOperatorNotFound   = errors.New("[shipsync] operator not found")
	ErrUnauthorized       = errors.New("[shipsync] unauthorized")
	ErrUnknownSettingKind = errors.New("[shipsync] unknown shipping setting kind")
)
