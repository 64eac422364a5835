package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode_UserRefWithTrailingText(t *testing.T) {
	segs := Decode(`<user id="7">Alice</user> replied`)

	assert.Len(t, segs, 2)
	assert.Equal(t, SegmentUserRef, segs[0].Kind)
	assert.Equal(t, int64(7), segs[0].TargetId)
	assert.Equal(t, "Alice", segs[0].Label)
	assert.Equal(t, SegmentText, segs[1].Kind)
	assert.Equal(t, " replied", segs[1].Text)
}

func TestDecode_NoteRef(t *testing.T) {
	segs := Decode(`see <note id="456">My Title</note>`)

	assert.Len(t, segs, 2)
	assert.Equal(t, SegmentText, segs[0].Kind)
	assert.Equal(t, "see ", segs[0].Text)
	assert.Equal(t, SegmentNoteRef, segs[1].Kind)
	assert.Equal(t, int64(456), segs[1].TargetId)
	assert.Equal(t, "My Title", segs[1].Label)
}

func TestDecode_MalformedFallsBackToLiteral(t *testing.T) {
	cases := []string{
		`<user id="x">Alice</user>`, // id 不是数字
		`<user id="7">Alice`,        // 未闭合
		`<user id="7">Alice</note>`, // 闭合标签不匹配
		`<User id="7">Alice</User>`, // 大小写敏感
		`<video id="7">clip</video>`,
	}
	for _, c := range cases {
		segs := Decode(c)
		assert.Len(t, segs, 1, c)
		assert.Equal(t, SegmentText, segs[0].Kind, c)
		assert.Equal(t, c, segs[0].Text, c)
	}
}

func TestDecode_NestedOuterTagIsLiteral(t *testing.T) {
	// 外层标签因为内容里出现 '<' 而不成立，只有内层是合法引用
	segs := Decode(`<user id="1"><note id="2">x</note></user>`)

	assert.Len(t, segs, 3)
	assert.Equal(t, SegmentText, segs[0].Kind)
	assert.Equal(t, `<user id="1">`, segs[0].Text)
	assert.Equal(t, SegmentNoteRef, segs[1].Kind)
	assert.Equal(t, int64(2), segs[1].TargetId)
	assert.Equal(t, SegmentText, segs[2].Kind)
	assert.Equal(t, `</user>`, segs[2].Text)
}

func TestDecode_PlainTextUntouched(t *testing.T) {
	segs := Decode("hello, 1 < 2 and nothing else")
	assert.Len(t, segs, 1)
	assert.Equal(t, SegmentText, segs[0].Kind)
	assert.Equal(t, "hello, 1 < 2 and nothing else", segs[0].Text)
}

func TestDecode_Empty(t *testing.T) {
	assert.Nil(t, Decode(""))
}

func TestRenderHTML_EscapesEverything(t *testing.T) {
	out := RenderHTML(`<user id="7">A&B</user> said <b>hi</b>`)

	assert.Equal(t,
		`<a class="ref ref-user" data-id="7" href="/users/7">A&amp;B</a> said &lt;b&gt;hi&lt;/b&gt;`,
		out)
}

func TestRenderHTML_NoteRefLink(t *testing.T) {
	out := RenderHTML(`<note id="456">Item Title</note>`)
	assert.Equal(t, `<a class="ref ref-note" data-id="456" href="/notes/456">Item Title</a>`, out)
}

func TestRefBuilders_StripAngleBrackets(t *testing.T) {
	assert.Equal(t, `<user id="9">scriptalert</user>`, UserRef(9, "<script>alert"))
	assert.Equal(t, `<note id="3">a</note>`, NoteRef(3, "a"))

	// 生成的标记必须能被自己的解码器识别
	segs := Decode(UserRef(9, "<evil>name"))
	assert.Len(t, segs, 1)
	assert.Equal(t, SegmentUserRef, segs[0].Kind)
	assert.Equal(t, "evilname", segs[0].Label)
}
