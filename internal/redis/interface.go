package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories rely on. It includes
// Watch, which the character repository uses for optimistic transactions.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of missing keys
const Nil = redis.Nil

// TxFailedErr is returned when a watched key changed before EXEC
var TxFailedErr = redis.TxFailedErr
