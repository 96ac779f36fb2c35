package security

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/crypto/bcrypt"
)

const dummyPassword = "customer-onboarding-dummy"

// PasswordHasher : bcrypt с настраиваемой стоимостью.
// Для отсутствующего логина пароль сравнивается с фиктивным хэшем той же стоимости,
// что и у последнего проверенного хэша из БД: после смены bcrypt_cost старые хэши
// проверяются дольше или быстрее новых, и время ответа не должно это выдавать.
type PasswordHasher struct {
	cost int

	// lastCost : стоимость последнего проверенного хэша из БД
	lastCost atomic.Int32

	mu          sync.Mutex
	dummyHashes map[int][]byte
}

func NewPasswordHasher(cost int) (*PasswordHasher, error) {
	h := &PasswordHasher{cost: cost, dummyHashes: make(map[int][]byte)}
	if _, err := h.dummyHash(cost); err != nil {
		return nil, fmt.Errorf("ошибка создания хэшера паролей: %w", err)
	}
	h.lastCost.Store(int32(cost))
	return h, nil
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("ошибка хэширования пароля: %w", err)
	}
	return string(hash), nil
}

// Verify возвращает false и для несовпадения, и для повреждённого хэша
func (h *PasswordHasher) Verify(hash, password string) bool {
	if cost, err := bcrypt.Cost([]byte(hash)); err == nil {
		h.lastCost.Store(int32(cost))
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// VerifyAbsent выполняет ту же работу, что и Verify, и всегда возвращает false
func (h *PasswordHasher) VerifyAbsent(password string) bool {
	dummy, err := h.dummyHash(h.dummyCost())
	if err != nil {
		dummy, _ = h.dummyHash(h.cost)
	}
	_ = bcrypt.CompareHashAndPassword(dummy, []byte(password))
	return false
}

func (h *PasswordHasher) dummyCost() int {
	return int(h.lastCost.Load())
}

func (h *PasswordHasher) dummyHash(cost int) ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if hash, ok := h.dummyHashes[cost]; ok {
		return hash, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)
	if err != nil {
		return nil, err
	}
	h.dummyHashes[cost] = hash
	return hash, nil
}
