package markup

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
)

// 通知正文里允许嵌入两种引用标记（大小写敏感，id 必须是数字）：
//   <user id="123">昵称</user>
//   <note id="456">笔记标题</note>
// 除这两种形式外的文本一律原样保留，嵌套或残缺的标记按普通文本处理

type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentUserRef
	SegmentNoteRef
)

type Segment struct {
	Kind     SegmentKind
	Text     string // SegmentText 时有效
	TargetId int64  // 引用目标的数字 id
	Label    string // 引用的展示文案
}

// 标签内容不允许出现 '<'，保证嵌套标记不会被识别为引用
var refPattern = regexp.MustCompile(`<user id="([0-9]+)">([^<]*)</user>|<note id="([0-9]+)">([^<]*)</note>`)

// UserRef 生成用户引用标记，生产方在正文里直接插值
func UserRef(id int64, label string) string {
	return fmt.Sprintf(`<user id="%d">%s</user>`, id, sanitizeLabel(label))
}

// NoteRef 生成笔记引用标记
func NoteRef(id int64, label string) string {
	return fmt.Sprintf(`<note id="%d">%s</note>`, id, sanitizeLabel(label))
}

// 文案里的尖括号会破坏标记语法，生成时直接剔除
func sanitizeLabel(label string) string {
	label = strings.ReplaceAll(label, "<", "")
	return strings.ReplaceAll(label, ">", "")
}

// Decode 把正文拆成有序片段，未识别的部分保持为文本片段
func Decode(content string) []Segment {
	if content == "" {
		return nil
	}

	matches := refPattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return []Segment{{Kind: SegmentText, Text: content}}
	}

	segments := make([]Segment, 0, len(matches)*2+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			segments = append(segments, Segment{Kind: SegmentText, Text: content[last:m[0]]})
		}

		// 子分组 1/2 对应 user，3/4 对应 note
		if m[2] >= 0 {
			id, _ := strconv.ParseInt(content[m[2]:m[3]], 10, 64)
			segments = append(segments, Segment{
				Kind:     SegmentUserRef,
				TargetId: id,
				Label:    content[m[4]:m[5]],
			})
		} else {
			id, _ := strconv.ParseInt(content[m[6]:m[7]], 10, 64)
			segments = append(segments, Segment{
				Kind:     SegmentNoteRef,
				TargetId: id,
				Label:    content[m[8]:m[9]],
			})
		}
		last = m[1]
	}
	if last < len(content) {
		segments = append(segments, Segment{Kind: SegmentText, Text: content[last:]})
	}
	return segments
}

// RenderHTML 把正文渲染成可直接展示的富文本
// 所有输出都经过转义，引用之外的内容不做任何改写
func RenderHTML(content string) string {
	var b strings.Builder
	for _, seg := range Decode(content) {
		switch seg.Kind {
		case SegmentUserRef:
			b.WriteString(fmt.Sprintf(`<a class="ref ref-user" data-id="%d" href="/users/%d">%s</a>`,
				seg.TargetId, seg.TargetId, html.EscapeString(seg.Label)))
		case SegmentNoteRef:
			b.WriteString(fmt.Sprintf(`<a class="ref ref-note" data-id="%d" href="/notes/%d">%s</a>`,
				seg.TargetId, seg.TargetId, html.EscapeString(seg.Label)))
		default:
			b.WriteString(html.EscapeString(seg.Text))
		}
	}
	return b.String()
}
