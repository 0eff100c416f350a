package memory

import (
	"context"
	"time"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria. Username único.
type UserRepo struct{ a *access }

func (r *UserRepo) Create(_ context.Context, user *entity.User) (int64, error) {
	var id int64
	err := r.a.with(func(st *state) error {
		for _, u := range st.users {
			if u.Username == user.Username {
				return conflict("insert usuario")
			}
		}
		id = st.nextID()
		u := *user
		u.ID = id
		if u.Role == "" {
			u.Role = entity.RoleUser
		}
		u.CreatedAt = time.Now().UTC()
		user.CreatedAt = u.CreatedAt
		st.users[id] = u
		return nil
	})
	return id, err
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	var out *entity.User
	err := r.a.with(func(st *state) error {
		if u, ok := st.users[id]; ok {
			out = &u
		}
		return nil
	})
	return out, err
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	var out *entity.User
	err := r.a.with(func(st *state) error {
		for _, u := range st.users {
			if u.Username == username {
				u := u
				out = &u
				break
			}
		}
		return nil
	})
	return out, err
}

func (r *UserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	u, err := r.GetByUsername(ctx, username)
	return u != nil, err
}

func (r *UserRepo) ListByRole(_ context.Context, role string) ([]*entity.User, error) {
	var list []*entity.User
	err := r.a.with(func(st *state) error {
		for _, id := range sortedIDs(st.users) {
			if u := st.users[id]; u.Role == role {
				list = append(list, &u)
			}
		}
		return nil
	})
	return list, err
}

func (r *UserRepo) Delete(_ context.Context, id int64) (bool, error) {
	var deleted bool
	err := r.a.with(func(st *state) error {
		if _, ok := st.users[id]; ok {
			delete(st.users, id)
			deleted = true
		}
		return nil
	})
	return deleted, err
}
