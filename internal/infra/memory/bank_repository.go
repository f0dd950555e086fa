package memory

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"

	"pathfinders-assessment/internal/assessment"
	"pathfinders-assessment/internal/domain"
)

// BankLoader fetches raw question banks from a backing store.
type BankLoader interface {
	LoadBank(ctx context.Context, bankID string) (domain.QuestionBank, error)
}

// BankRepository caches validated banks with TTL to avoid repeated loads.
type BankRepository struct {
	loader BankLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand
	rndMu  sync.Mutex

	mu    sync.RWMutex
	cache map[string]cachedBank
}

type cachedBank struct {
	bank      *assessment.Bank
	expiresAt time.Time
}

func NewBankRepository(loader BankLoader, ttl time.Duration) *BankRepository {
	return &BankRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedBank),
	}
}

func (r *BankRepository) GetBank(ctx context.Context, bankID string) (*assessment.Bank, error) {
	if bank, ok := r.cached(bankID); ok {
		return bank, nil
	}

	result, err, _ := r.sf.Do(bankID, func() (interface{}, error) {
		if bank, ok := r.cached(bankID); ok {
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

		expiresAt := r.clock().Add(r.ttlWithJitter())
		r.mu.Lock()
		r.cache[bankID] = cachedBank{bank: bank, expiresAt: expiresAt}
		r.mu.Unlock()
		return bank, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*assessment.Bank), nil
}

func (r *BankRepository) cached(bankID string) (*assessment.Bank, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.cache[bankID]
	if !ok || !entry.expiresAt.After(r.clock()) {
		return nil, false
	}
	return entry.bank, true
}

func (r *BankRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticBankLoader is a simple loader backed by an in-memory map (useful for tests/demos).
type StaticBankLoader struct {
	banks map[string]domain.QuestionBank
}

func NewStaticBankLoader(banks ...*assessment.Bank) *StaticBankLoader {
	l := &StaticBankLoader{banks: make(map[string]domain.QuestionBank, len(banks))}
	for _, b := range banks {
		l.banks[b.ID()] = b.Document()
	}
	return l
}

func (l *StaticBankLoader) LoadBank(_ context.Context, bankID string) (domain.QuestionBank, error) {
	if bank, ok := l.banks[bankID]; ok {
		return bank, nil
	}
	return domain.QuestionBank{}, domain.ErrBankNotFound
}

// FileBankLoader serves a single bank read from a YAML file.
type FileBankLoader struct {
	path string
}

func NewFileBankLoader(path string) *FileBankLoader {
	return &FileBankLoader{path: path}
}

func (l *FileBankLoader) LoadBank(_ context.Context, bankID string) (domain.QuestionBank, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return domain.QuestionBank{}, fmt.Errorf("read bank file: %w", err)
	}
	var doc domain.QuestionBank
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.QuestionBank{}, fmt.Errorf("decode bank file: %w", err)
	}
	if doc.ID != bankID {
		return domain.QuestionBank{}, domain.ErrBankNotFound
	}
	return doc, nil
}
