package book

import (
	"time"
)

// Book is the domain entity, mapped 1:1 to the books table.
// Books have no owner - any authenticated caller can add one - and are
// immutable after creation: no edit or delete operation exists.
type Book struct {
	ID     int64  `db:"id" json:"id"`
	Title  string `db:"title" json:"title"`
	Author string `db:"author" json:"author"`
	Genre  string `db:"genre" json:"genre"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
