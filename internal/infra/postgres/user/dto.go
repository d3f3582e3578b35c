package infra_postgres_user

import (
	"database/sql"

	"github.com/ZeNuW/filmorate/internal/model"
)

type UserDB struct {
	ID       int64        `db:"user_id"`
	Email    string       `db:"email"`
	Login    string       `db:"login"`
	Name     string       `db:"name"`
	Birthday sql.NullTime `db:"birthday"`
}

func (u *UserDB) ToDomain() model.User {
	user := model.User{
		ID:    u.ID,
		Email: u.Email,
		Login: u.Login,
		Name:  u.Name,
	}
	if u.Birthday.Valid {
		user.Birthday = u.Birthday.Time.UTC()
	}
	return user
}

func FromDomain(u model.User) UserDB {
	return UserDB{
		ID:       u.ID,
		Email:    u.Email,
		Login:    u.Login,
		Name:     u.Name,
		Birthday: sql.NullTime{Time: u.Birthday, Valid: !u.Birthday.IsZero()},
	}
}

func toDomainList(rows []UserDB) []model.User {
	users := make([]model.User, len(rows))
	for i := range rows {
		users[i] = rows[i].ToDomain()
	}
	return users
}

