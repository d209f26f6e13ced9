// Package security はアプリケーションのセキュリティ機能を提供する。
//
// SnippetSanitizerService は外部APIから受け取ったテキスト断片を
// サニタイズし、マークアップ混入によるXSSリスクからユーザーを保護する。
// bluemondayのStrictPolicyにより全てのタグと属性を除去する。
package security

import "github.com/microcosm-cc/bluemonday"

// SnippetSanitizerService はテキスト断片のサニタイズ機能のインターフェースを定義する。
// 動画検索結果のタイトル・説明文をAPI応答に含める前に使用される。
type SnippetSanitizerService interface {
	// Sanitize は入力からマークアップをすべて除去したプレーンテキストを返す。
	// 空文字列の入力には空文字列を返す。
	// 同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(raw string) string
}

// snippetSanitizer はSnippetSanitizerServiceの実装。
// bluemondayのポリシーを保持し、スレッドセーフにサニタイズ処理を行う。
type snippetSanitizer struct {
	policy *bluemonday.Policy
}

// NewSnippetSanitizer はSnippetSanitizerServiceの新しいインスタンスを生成する。
// StrictPolicyは許可タグを一切持たないため、scriptタグやon*属性を含む
// あらゆるマークアップが除去される。
func NewSnippetSanitizer() *snippetSanitizer {
	return &snippetSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Sanitize は入力からマークアップをすべて除去したプレーンテキストを返す。
func (s *snippetSanitizer) Sanitize(raw string) string {
	return s.policy.Sanitize(raw)
}
