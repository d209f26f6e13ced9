// Package model はドメインモデルを定義する。
package model

import "time"

// Bookmark はユーザーが保存したトピックへの参照を表す。
// (UserID, TopicID) の組につき高々1件という不変条件を持つ。
type Bookmark struct {
	ID        string
	UserID    string
	TopicID   string
	CreatedAt time.Time
}

// BookmarkWithTopic はブックマークと参照先トピックを結合した読み取り用構造体。
// 参照先トピックが存在しない場合、Topicはnilになる（エラーにはしない）。
type BookmarkWithTopic struct {
	Bookmark
	Topic *Topic
}
