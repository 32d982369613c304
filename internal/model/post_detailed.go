package model

type PostDetailed struct {
	Post   *Post `json:"post"`
	Author *User `json:"author"`
}
