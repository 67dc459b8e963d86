package redisrepo

import "fmt"

const (
	POST_KEY      = "post:%s" // <postID>
	ALL_POSTS_KEY = "posts:all"
)

func PostKey(postID string) string {
	return fmt.Sprintf(POST_KEY, postID)
}

func AllPostsKey() string {
	return ALL_POSTS_KEY
}
