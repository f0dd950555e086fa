package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"pathfinders-assessment/internal/assessment"
	"pathfinders-assessment/internal/domain"
	"pathfinders-assessment/internal/logging"
)

// BankLoader fetches bank content from a backing store (e.g., Postgres).
type BankLoader interface {
	LoadBank(ctx context.Context, bankID string) (domain.QuestionBank, error)
}

// BankRepository caches question banks in Redis and falls back to a loader on cache miss.
// Banks are stored as JSON documents: SET assessment:bank:{bankID} {json}
type BankRepository struct {
	client *redis.Client
	loader BankLoader
	ttl    time.Duration
	sf     singleflight.Group

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewBankRepository(client *redis.Client, loader BankLoader, ttl time.Duration) *BankRepository {
	return &BankRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *BankRepository) GetBank(ctx context.Context, bankID string) (*assessment.Bank, error) {
	if bank, ok := r.fromCache(ctx, bankID); ok {
		return bank, nil
	}

	result, err, _ := r.sf.Do(bankID, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if bank, ok := r.fromCache(ctx, bankID); ok {
			return bank, nil
		}

		doc, err := r.loader.LoadBank(ctx, bankID)
		if err != nil {
			return nil, err
		}
		bank, err := assessment.FromDocument(doc)
		if err != nil {
			return nil, err
		}

		payload, err := json.Marshal(bank.Document())
		if err == nil {
			err = r.client.Set(ctx, r.key(bankID), payload, r.ttlWithJitter()).Err()
		}
		if err != nil {
			logging.WithContext(ctx).WithError(err).WithField("bank", bankID).Warn("bank cache write failed")
		}
		return bank, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*assessment.Bank), nil
}

func (r *BankRepository) fromCache(ctx context.Context, bankID string) (*assessment.Bank, bool) {
	raw, err := r.client.Get(ctx, r.key(bankID)).Bytes()
	if err != nil {
		return nil, false
	}
	var doc domain.QuestionBank
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, false
	}
	bank, err := assessment.FromDocument(doc)
	if err != nil {
		return nil, false
	}
	return bank, true
}

func (r *BankRepository) key(bankID string) string {
	return "assessment:bank:" + bankID
}

func (r *BankRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
