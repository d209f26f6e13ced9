// Package model はドメインモデルを定義する。
package model

// Category はトピックのカテゴリを表す。
// TopicCountは保存されず、読み取り時にcategory_slugの一致数から算出される。
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Icon        string
	ImageURL    string
	TopicCount  int
}

// Topic はカテゴリに属する知識トピックを表す。
// CategorySlugは値での参照であり、参照整合性は強制されない。
type Topic struct {
	ID           string
	CategorySlug string
	Title        string
	Description  string
	Content      string
	Icon         string
	Tags         []string
}

// Video は外部動画検索の結果1件を表す。永続化されない。
type Video struct {
	ID           string
	Title        string
	Description  string
	Thumbnail    string
	ChannelTitle string
}
