package board

import "time"

// User: users 테이블과 매핑되는 GORM 모델입니다. (Password는 bcrypt 해시만 저장)
type User struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	Username  string    `gorm:"uniqueIndex;column:username;size:255"`
	Password  string    `gorm:"column:password;size:255"`
	Nickname  string    `gorm:"uniqueIndex;column:nickname;size:255"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	Posts      []Post `gorm:"foreignKey:UserID"`
	LikedPosts []Post `gorm:"many2many:post_likes;joinForeignKey:UserID;joinReferences:PostID"`
}

func (User) TableName() string { return "users" }

// Post: posts 테이블과 매핑되는 GORM 모델입니다.
type Post struct {
	ID         int64     `gorm:"primaryKey;column:id"`
	Title      string    `gorm:"column:title;size:255"`
	Content    string    `gorm:"column:content;type:text"`
	LikesCount int       `gorm:"column:likes_count;index;default:0"`
	UserID     int64     `gorm:"column:user_id"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`

	User     *User     `gorm:"foreignKey:UserID"`
	Comments []Comment `gorm:"foreignKey:PostID"`
	LikedBy  []User    `gorm:"many2many:post_likes;joinForeignKey:PostID;joinReferences:UserID"`
}

func (Post) TableName() string { return "posts" }

// AuthorNickname: 작성자 닉네임을 반환합니다. (작성자 미로드 시 빈 문자열)
func (p *Post) AuthorNickname() string {
	if p.User == nil {
		return ""
	}
	return p.User.Nickname
}

// Comment: comments 테이블과 매핑되는 GORM 모델입니다.
type Comment struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	Content   string    `gorm:"column:content;type:text"`
	UserID    int64     `gorm:"column:user_id"`
	PostID    int64     `gorm:"column:post_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	User *User `gorm:"foreignKey:UserID"`
}

func (Comment) TableName() string { return "comments" }

// Models: AutoMigrate 대상 전체 모델 목록을 반환한다.
func Models() []any {
	return []any{&User{}, &Post{}, &Comment{}}
}
