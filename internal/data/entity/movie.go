package entity

type Movie struct {
	Base
	Title    string `db:"title"`
	Director string `db:"director"`
	Year     int    `db:"year"`
	Genre    string `db:"genre"`
}
