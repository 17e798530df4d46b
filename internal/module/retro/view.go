package retro

import (
	"sort"
	"team-retro-system/internal/global/authz"
	"team-retro-system/internal/global/database"
	"team-retro-system/internal/global/jwt"
	"team-retro-system/internal/global/response"
	"team-retro-system/internal/model"
	"time"

	"github.com/gin-gonic/gin"
)

// AnonymousName 匿名回顾会里对非作者展示的名字
const AnonymousName = "Anonymous"

// AuthorView 作者投影。匿名会里除作者本人外不返回 id 和头像
type AuthorView struct {
	ID       uint   `json:"id,omitempty"`
	NickName string `json:"nick_name"`
	Avatar   string `json:"avatar,omitempty"`
}

type CommentView struct {
	ID        uint       `json:"id"`
	Content   string     `json:"content"`
	Author    AuthorView `json:"author"`
	IsOwn     bool       `json:"is_own"`
	CreatedAt time.Time  `json:"created_at"`
}

type CardView struct {
	ID        uint          `json:"id"`
	Content   string        `json:"content"`
	Author    AuthorView    `json:"author"`
	VoteCount int           `json:"vote_count"`
	HasVoted  bool          `json:"has_voted"`
	IsOwn     bool          `json:"is_own"`
	CreatedAt time.Time     `json:"created_at"`
	Comments  []CommentView `json:"comments,omitempty"`
}

type ColumnView struct {
	ID     uint       `json:"id"`
	Name   string     `json:"name"`
	Emoji  string     `json:"emoji"`
	Prompt string     `json:"prompt"`
	Order  int        `json:"order"`
	Cards  []CardView `json:"cards"`
}

type ParticipantView struct {
	UserID   uint      `json:"user_id"`
	NickName string    `json:"nick_name"`
	Avatar   string    `json:"avatar,omitempty"`
	JoinedAt time.Time `json:"joined_at"`
}

type RetroView struct {
	ID             uint              `json:"id"`
	Name           string            `json:"name"`
	TeamID         uint              `json:"team_id"`
	Status         string            `json:"status"`
	IsAnonymous    bool              `json:"is_anonymous"`
	VoteType       string            `json:"vote_type"`
	TimeRemaining  *int64            `json:"time_remaining"` // 秒，非 active 或无计时为 null
	Participants   []ParticipantView `json:"participants"`
	Columns        []ColumnView      `json:"columns"`
	VotesUsed      int               `json:"votes_used"`
	VotesRemaining int               `json:"votes_remaining"`
}

// GetRetroView 组装完整回顾会视图。纯读操作，前端轮询调用
func GetRetroView(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}
	retro, err := Load(c.Param("retro_id"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	if member, err := authz.IsTeamMember(retro.TeamID, payload.UserID); err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	} else if !member {
		response.Fail(c, response.ErrForbidden.WithTips("不是该团队成员"))
		return
	}

	view, err := buildView(retro, payload.UserID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, view)
}

func buildView(retro *model.Retro, viewerID uint) (*RetroView, error) {
	var columns []model.TemplateColumn
	if err := database.DB.
		Where("template_id = ?", retro.TemplateID).
		Order("sort_order ASC").
		Find(&columns).Error; err != nil {
		return nil, response.ErrDatabase.WithOrigin(err)
	}

	var participants []model.Participant
	if err := database.DB.Preload("User").
		Where("retro_id = ?", retro.ID).
		Order("joined_at ASC").
		Find(&participants).Error; err != nil {
		return nil, response.ErrDatabase.WithOrigin(err)
	}

	var cards []model.Card
	if err := database.DB.
		Where("retro_id = ?", retro.ID).
		Order("created_at ASC, id ASC").
		Find(&cards).Error; err != nil {
		return nil, response.ErrDatabase.WithOrigin(err)
	}

	var votes []model.Vote
	if err := database.DB.Where("retro_id = ?", retro.ID).Find(&votes).Error; err != nil {
		return nil, response.ErrDatabase.WithOrigin(err)
	}
	voteCount := make(map[uint]int)
	viewerVoted := make(map[uint]bool)
	votesUsed := 0
	for _, v := range votes {
		voteCount[v.CardID]++
		if v.UserID == viewerID {
			viewerVoted[v.CardID] = true
			votesUsed++
		}
	}

	// 评论只在 discussing 及之后的阶段返回
	commentsByCard := make(map[uint][]model.Comment)
	if retro.Status >= model.StatusDiscussing {
		cardIDs := make([]uint, 0, len(cards))
		for _, card := range cards {
			cardIDs = append(cardIDs, card.ID)
		}
		if len(cardIDs) > 0 {
			var comments []model.Comment
			if err := database.DB.
				Where("card_id IN ?", cardIDs).
				Order("created_at ASC, id ASC").
				Find(&comments).Error; err != nil {
				return nil, response.ErrDatabase.WithOrigin(err)
			}
			for _, comment := range comments {
				commentsByCard[comment.CardID] = append(commentsByCard[comment.CardID], comment)
			}
		}
	}

	users, err := loadAuthors(cards, commentsByCard, participants)
	if err != nil {
		return nil, err
	}

	columnViews := make([]ColumnView, 0, len(columns))
	for _, column := range columns {
		cv := ColumnView{
			ID:     column.ID,
			Name:   column.Name,
			Emoji:  column.Emoji,
			Prompt: column.Prompt,
			Order:  column.Order,
			Cards:  []CardView{},
		}
		for _, card := range cards {
			if card.ColumnID != column.ID {
				continue
			}
			cardView := CardView{
				ID:        card.ID,
				Content:   card.Content,
				Author:    projectAuthor(card.AuthorID, retro.IsAnonymous, viewerID, users),
				VoteCount: voteCount[card.ID],
				HasVoted:  viewerVoted[card.ID],
				IsOwn:     card.AuthorID == viewerID,
				CreatedAt: card.CreatedAt,
			}
			for _, comment := range commentsByCard[card.ID] {
				cardView.Comments = append(cardView.Comments, CommentView{
					ID:        comment.ID,
					Content:   comment.Content,
					Author:    projectAuthor(comment.AuthorID, retro.IsAnonymous, viewerID, users),
					IsOwn:     comment.AuthorID == viewerID,
					CreatedAt: comment.CreatedAt,
				})
			}
			cv.Cards = append(cv.Cards, cardView)
		}
		// 票数降序，同票按创建时间升序——cards 已按创建时间升序取出，稳定排序保住这一点
		sort.SliceStable(cv.Cards, func(i, j int) bool {
			return cv.Cards[i].VoteCount > cv.Cards[j].VoteCount
		})
		columnViews = append(columnViews, cv)
	}

	participantViews := make([]ParticipantView, 0, len(participants))
	for _, p := range participants {
		participantViews = append(participantViews, ParticipantView{
			UserID:   p.UserID,
			NickName: p.User.NickName,
			Avatar:   p.User.Avatar,
			JoinedAt: p.JoinedAt,
		})
	}

	view := &RetroView{
		ID:             retro.ID,
		Name:           retro.Name,
		TeamID:         retro.TeamID,
		Status:         retro.Status.String(),
		IsAnonymous:    retro.IsAnonymous,
		VoteType:       retro.VoteType,
		TimeRemaining:  timeRemaining(retro),
		Participants:   participantViews,
		Columns:        columnViews,
		VotesUsed:      votesUsed,
		VotesRemaining: max(retro.MaxVotesPerUser-votesUsed, 0),
	}
	return view, nil
}

// projectAuthor 匿名投影：非匿名会或作者本人可见真实身份，其余一律 Anonymous。
// 该规则与阶段无关，创建后不可更改。
func projectAuthor(authorID uint, isAnonymous bool, viewerID uint, users map[uint]model.User) AuthorView {
	if isAnonymous && authorID != viewerID {
		return AuthorView{NickName: AnonymousName}
	}
	user, ok := users[authorID]
	if !ok {
		return AuthorView{ID: authorID, NickName: "已注销用户"}
	}
	return AuthorView{
		ID:       user.ID,
		NickName: user.NickName,
		Avatar:   user.Avatar,
	}
}

// timeRemaining 计算剩余秒数，向下取整到 0；仅 active 且配置了计时才有值
func timeRemaining(retro *model.Retro) *int64 {
	if retro.Status != model.StatusActive || retro.TimerEndsAt == nil {
		return nil
	}
	remaining := int64(time.Until(*retro.TimerEndsAt).Seconds())
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}

// loadAuthors 一次性取出视图里会出现的所有用户
func loadAuthors(cards []model.Card, commentsByCard map[uint][]model.Comment, participants []model.Participant) (map[uint]model.User, error) {
	idSet := make(map[uint]bool)
	for _, card := range cards {
		idSet[card.AuthorID] = true
	}
	for _, comments := range commentsByCard {
		for _, comment := range comments {
			idSet[comment.AuthorID] = true
		}
	}
	users := make(map[uint]model.User, len(idSet))
	for _, p := range participants {
		if idSet[p.UserID] {
			users[p.UserID] = p.User
			delete(idSet, p.UserID)
		}
	}
	if len(idSet) > 0 {
		ids := make([]uint, 0, len(idSet))
		for id := range idSet {
			ids = append(ids, id)
		}
		var rest []model.User
		if err := database.DB.Find(&rest, ids).Error; err != nil {
			return nil, response.ErrDatabase.WithOrigin(err)
		}
		for _, u := range rest {
			users[u.ID] = u
		}
	}
	return users, nil
}
