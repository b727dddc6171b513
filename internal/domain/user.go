package domain

type User struct {
	Model
	Username string `db:"username"`
	Email    string `db:"email"`
	Password string `db:"password"`
}
