package auth

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

type InMemoryStaffRepository struct {
	mu    sync.RWMutex
	staff map[string]*Staff
}

func NewInMemoryStaffRepository() *InMemoryStaffRepository {
	return &InMemoryStaffRepository{
		staff: make(map[string]*Staff),
	}
}

func (r *InMemoryStaffRepository) Save(staff *Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if staff.ID == "" {
		staff.ID = uuid.New().String()
	}
	r.staff[staff.Email] = staff
	return nil
}

func (r *InMemoryStaffRepository) ExistsByEmail(email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.staff[email]
	return exists, nil
}

func (r *InMemoryStaffRepository) FindByEmail(email string) (*Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	staff, ok := r.staff[email]
	if !ok {
		return nil, errors.New("staff member not found")
	}
	return staff, nil
}
