package kakao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/honeybible-cli/internal/domain"
)

func TestParseTXT(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []domain.ChatRow
	}{
		{name: "empty"},
		{
			name: "user message",
			text: "2026. 2. 2. 오전 7:33, 홍길동 : 2/2🐷\r\n",
			want: []domain.ChatRow{{Sender: "홍길동", Message: "2/2🐷"}},
		},
		{
			name: "system notice is skipped",
			text: "2026. 2. 1. 오후 8:26: 홍길동님이 김철수님을 초대했습니다.\r\n" +
				"2026. 2. 2. 오전 7:33, 홍길동 : 2/2🐷\r\n",
			want: []domain.ChatRow{{Sender: "홍길동", Message: "2/2🐷"}},
		},
		{
			name: "headers are skipped",
			text: "Talk_2026.2.10 08:50-1.txt\r\n" +
				"저장한 날짜 : 2026. 2. 10. 오후 12:16\r\n" +
				"\r\n" +
				"2026년 2월 1일 일요일\r\n" +
				"2026. 2. 2. 오전 7:33, 홍길동 : 2/2🐷\r\n",
			want: []domain.ChatRow{{Sender: "홍길동", Message: "2/2🐷"}},
		},
		{
			name: "continuation lines join the previous message",
			text: "2026. 2. 1. 오후 8:29, 홍길동 : 첫줄\r\n" +
				"둘째줄\r\n" +
				"셋째줄\r\n" +
				"2026. 2. 2. 오전 7:33, 김철수 : 단일줄\r\n",
			want: []domain.ChatRow{
				{Sender: "홍길동", Message: "첫줄\n둘째줄\n셋째줄"},
				{Sender: "김철수", Message: "단일줄"},
			},
		},
		{
			name: "system notice ends a multi-line message",
			text: "2026. 2. 1. 오후 8:29, 홍길동 : 첫줄\r\n" +
				"둘째줄\r\n" +
				"2026. 2. 1. 오후 8:30: 시스템 메시지입니다.\r\n" +
				"고아줄\r\n",
			want: []domain.ChatRow{{Sender: "홍길동", Message: "첫줄\n둘째줄"}},
		},
		{
			name: "only system notices",
			text: "2026. 2. 1. 오후 8:26: 홍길동님이 방장이 되었습니다.\r\n",
		},
		{
			name: "sender with a space",
			text: "2026. 2. 2. 오전 7:33, 광천 유영훈 : 2/2🐽\n",
			want: []domain.ChatRow{{Sender: "광천 유영훈", Message: "2/2🐽"}},
		},
		{
			name: "english export",
			text: "Talk_2026.2.13 18:42-1.txt\r\n" +
				"Date Saved : Feb 13, 2026 at 18:42\r\n" +
				"\r\n" +
				"Sunday, February 1, 2026\r\n" +
				"Feb 1, 2026 at 20:26: 홍길동님이 방장이 되었습니다.\r\n" +
				"Feb 1, 2026 at 20:29, 홍길동 : 공지사항\r\n" +
				"여러 줄 안내문\r\n" +
				"\r\n" +
				"Monday, February 2, 2026\r\n" +
				"Feb 2, 2026 at 7:33, 김철수 : 2/2🐷\r\n",
			want: []domain.ChatRow{
				{Sender: "홍길동", Message: "공지사항\n여러 줄 안내문"},
				{Sender: "김철수", Message: "2/2🐷"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseTXT(tt.text))
		})
	}
}

func TestParseChatMeta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want ChatMeta
	}{
		{
			name: "korean header",
			text: "꿀성경 - 교육국 님과 카카오톡 대화\r\n저장한 날짜 : 2026. 2. 9. 오전 10:50\r\n\r\n2026년 2월 1일 일요일\r\n",
			want: ChatMeta{RoomName: "꿀성경 - 교육국", SavedAt: "2026/02/09-10:50"},
		},
		{
			name: "afternoon converts to 24 hours",
			text: "테스트방 님과 카카오톡 대화\r\n저장한 날짜 : 2026. 2. 10. 오후 3:30\r\n",
			want: ChatMeta{RoomName: "테스트방", SavedAt: "2026/02/10-15:30"},
		},
		{
			name: "noon stays 12",
			text: "테스트방 님과 카카오톡 대화\r\n저장한 날짜 : 2026. 2. 10. 오후 12:05\r\n",
			want: ChatMeta{RoomName: "테스트방", SavedAt: "2026/02/10-12:05"},
		},
		{
			name: "midnight becomes 00",
			text: "테스트방 님과 카카오톡 대화\r\n저장한 날짜 : 2026. 2. 10. 오전 12:30\r\n",
			want: ChatMeta{RoomName: "테스트방", SavedAt: "2026/02/10-00:30"},
		},
		{
			name: "room line after saved date",
			text: "Talk_2026.2.10 08:50-1.txt\r\n저장한 날짜 : 2026. 2. 10. 오후 12:16\r\n꿀성경 - 교육국 님과 카카오톡 대화\r\n",
			want: ChatMeta{RoomName: "꿀성경 - 교육국", SavedAt: "2026/02/10-12:16"},
		},
		{
			name: "english saved date",
			text: "Date Saved : Feb 13, 2026 at 18:42\r\n\r\nSunday, February 1, 2026\r\n",
			want: ChatMeta{SavedAt: "2026/02/13-18:42"},
		},
		{
			name: "english december midnight",
			text: "Date Saved : Dec 25, 2025 at 0:00\r\n",
			want: ChatMeta{SavedAt: "2025/12/25-00:00"},
		},
		{
			name: "no header",
			text: "2026. 2. 2. 오전 7:33, 홍길동 : 테스트방 님과 카카오톡 대화\r\n",
		},
		{name: "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseChatMeta(tt.text))
		})
	}
}

func TestParseTXTKeepsMessageColons(t *testing.T) {
	t.Parallel()

	rows := ParseTXT("2026. 2. 2. 오전 7:33, 홍길동 : 공지: 2/2~2/3 읽기\n")
	require.Len(t, rows, 1)
	assert.Equal(t, "공지: 2/2~2/3 읽기", rows[0].Message)
}
