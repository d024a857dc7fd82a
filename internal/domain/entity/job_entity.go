package entity

// CreatedAtLayout is the ISO-8601 form used for JobPost.CreatedAt.
// Values in this layout sort lexically in time order.
const CreatedAtLayout = "2006-01-02T15:04:05.000Z"

// JobPost is a job listing owned by CreatorID.
type JobPost struct {
	ID          string          `json:"id"`
	CreatorID   int             `json:"creatorId"`
	Image       string          `json:"image"`
	Title       string          `json:"title"`
	Start       string          `json:"start"`
	Description string          `json:"description"`
	CreatedAt   string          `json:"createdAt"`
	Likes       map[string]bool `json:"likes"`
	Comments    []Comment       `json:"comments"`
}

// Comment is stored in append order on its post.
type Comment struct {
	UserID  string `json:"userId"`
	Comment string `json:"comment"`
}

// JobView is a JobPost with likes and comments resolved against the user table.
type JobView struct {
	ID          string        `json:"id"`
	CreatorID   int           `json:"creatorId"`
	Image       string        `json:"image"`
	Title       string        `json:"title"`
	Start       string        `json:"start"`
	Description string        `json:"description"`
	CreatedAt   string        `json:"createdAt"`
	Likes       []LikeView    `json:"likes"`
	Comments    []CommentView `json:"comments"`
}

type LikeView struct {
	UserID    int    `json:"userId"`
	UserEmail string `json:"userEmail"`
	UserName  string `json:"userName"`
}

type CommentView struct {
	UserID    int    `json:"userId"`
	UserEmail string `json:"userEmail"`
	UserName  string `json:"userName"`
	Comment   string `json:"comment"`
}
