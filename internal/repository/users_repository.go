package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"

	errorvalues "github.com/duoday/daily/internal/error_values"
	"github.com/duoday/daily/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) CreateIfAbsent(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	_, err := ur.conn.Exec(ctx, `INSERT INTO users (name, password) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING;`,
		user.Name,
		user.Password,
	)
	if err != nil {
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, name, password FROM users WHERE name = $1;`, name)
	if err := row.Scan(&user.ID, &user.Name, &user.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by name error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) ListAll(ctx context.Context) ([]entity.PublicUser, error) {
	rows, err := ur.conn.Query(ctx, `SELECT id, name FROM users ORDER BY id ASC;`)
	if err != nil {
		return nil, errors.New("listing users error: " + err.Error())
	}
	defer rows.Close()
	users := make([]entity.PublicUser, 0, 2)
	for rows.Next() {
		var u entity.PublicUser
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, errors.New("scanning user row error: " + err.Error())
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning users: " + err.Error())
	}
	return users, nil
}
