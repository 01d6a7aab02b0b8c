// Package protocol defines the JSON envelope and payloads exchanged with
// browser clients over the websocket transport.
package protocol

import "encoding/json"

// ClientKind is a message type sent by a client.
type ClientKind string

const (
	ClientCreateRoom     ClientKind = "create_room"
	ClientJoinRoom       ClientKind = "join_room"
	ClientHostStart      ClientKind = "host_start"
	ClientHostPause      ClientKind = "host_pause"
	ClientHostReset      ClientKind = "host_reset"
	ClientHostSetSpeed   ClientKind = "host_set_interval"
	ClientHostSetAuto    ClientKind = "host_set_automark"
	ClientHostCallNext   ClientKind = "host_call_next"
	ClientMarkCell       ClientKind = "mark_cell"
	ClientUnmarkCell     ClientKind = "unmark_cell"
	ClientClaimFullHouse ClientKind = "claim_full_house"
	ClientVotePlayAgain  ClientKind = "vote_play_again"
	ClientVoteExit       ClientKind = "vote_exit"
)

// ServerKind is a message type sent to clients.
type ServerKind string

const (
	ServerRoomCreated     ServerKind = "room_created"
	ServerJoined          ServerKind = "joined"
	ServerNewCard         ServerKind = "new_card"
	ServerRoomState       ServerKind = "room_state"
	ServerNumberCalled    ServerKind = "number_called"
	ServerFilmCalled      ServerKind = "film_called"
	ServerLineWinner      ServerKind = "line_winner"
	ServerFullHouse       ServerKind = "full_house"
	ServerGameWinner      ServerKind = "game_winner"
	ServerNoMore          ServerKind = "no_more"
	ServerPlayAgainVote   ServerKind = "play_again_vote"
	ServerNewGameStarting ServerKind = "new_game_starting"
	ServerError           ServerKind = "error_msg"
)

// Envelope is the outer frame of every client message. Data is decoded into
// the payload type selected by Type.
type Envelope struct {
	Type ClientKind      `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// ServerMessage is the outer frame of every server message.
type ServerMessage struct {
	Type ServerKind  `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// CreateRoomData is the create_room payload.
type CreateRoomData struct {
	Name string `json:"name"`
}

// JoinRoomData is the join_room payload. HostKey, when present and matching,
// transfers host authority to the joining connection.
type JoinRoomData struct {
	RoomID  string `json:"roomId"`
	Name    string `json:"name"`
	HostKey string `json:"hostKey,omitempty"`
}

// SetIntervalData is the host_set_interval payload.
type SetIntervalData struct {
	Ms int `json:"ms"`
}

// SetAutoMarkData is the host_set_automark payload.
type SetAutoMarkData struct {
	Enabled bool `json:"enabled"`
}

// CellData identifies one cell on the sender's own card.
type CellData struct {
	Index int `json:"idx"`
}

// WireCell is one card position on the wire. Value is null for empty padding
// cells, "FREE" for the free center, the item text otherwise.
type WireCell struct {
	Value *string `json:"value"`
	Free  bool    `json:"free,omitempty"`
}

// WireCard is the card a client renders.
type WireCard struct {
	Variant string     `json:"variant"`
	Rows    int        `json:"rows"`
	Cols    int        `json:"cols"`
	Cells   []WireCell `json:"cells"`
}

// RoomCreatedData is sent to the creator only. HostKey never reaches any
// other player.
type RoomCreatedData struct {
	RoomID  string `json:"roomId"`
	Seed    uint32 `json:"seed"`
	HostKey string `json:"hostKey"`
}

// JoinedData is sent to a player on successful join.
type JoinedData struct {
	RoomID   string   `json:"roomId"`
	PlayerID string   `json:"playerId"`
	Seed     uint32   `json:"seed"`
	IsHost   bool     `json:"isHost"`
	Card     WireCard `json:"card"`
	Called   []string `json:"called"`
	Marks    []int    `json:"marks"`
}

// NewCardData delivers a regenerated card after a reset.
type NewCardData struct {
	Card  WireCard `json:"card"`
	Marks []int    `json:"marks"`
}

// PublicPlayer is the roster view of a player. It carries badges only; cards
// and marks are never exposed to other players.
type PublicPlayer struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	IsHost    bool     `json:"isHost"`
	Lines     []string `json:"lines,omitempty"`
	FullHouse bool     `json:"fullHouse,omitempty"`
	Voted     bool     `json:"voted,omitempty"`
}

// RoomStateData is the shared room snapshot broadcast on every change.
type RoomStateData struct {
	RoomID      string         `json:"roomId"`
	Variant     string         `json:"variant"`
	Players     []PublicPlayer `json:"players"`
	Called      []string       `json:"called"`
	Running     bool           `json:"running"`
	IntervalMs  int            `json:"intervalMs"`
	AutoMark    bool           `json:"autoMark"`
	GameEnded   bool           `json:"gameEnded"`
	Winner      *WinnerData    `json:"winner,omitempty"`
	VoteCount   int            `json:"voteCount,omitempty"`
	VotesNeeded int            `json:"votesNeeded,omitempty"`
}

// ItemCalledData announces one draw.
type ItemCalledData struct {
	Item      string `json:"item"`
	Remaining int    `json:"remaining"`
}

// LineWinnerData announces a newly completed line.
type LineWinnerData struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	LineID   string `json:"lineId"`
}

// FullHouseData announces full coverage of a card.
type FullHouseData struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
}

// WinnerData is the terminal result of a round.
type WinnerData struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	LineID   string `json:"lineId,omitempty"`
}

// PlayAgainVoteData reports restart-vote progress.
type PlayAgainVoteData struct {
	Votes  int `json:"votes"`
	Needed int `json:"needed"`
}

// ErrorData carries the only errors that ever reach a client.
type ErrorData struct {
	Message string `json:"message"`
}
