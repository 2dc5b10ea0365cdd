package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/sqlc-dev/pqtype"

	"github.com/saeidalz13/battleship-ai/db/sqlc"
	mb "github.com/saeidalz13/battleship-ai/models/battleship"
	mc "github.com/saeidalz13/battleship-ai/models/connection"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"
)

var (
	upgrader = websocket.Upgrader{

		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

type RequestProcessor struct {
	sessionManager mc.SessionManager
	gameManager    mb.GameManager
	dbManager      *sqlc.DbManager

	stage     string
	moveDelay time.Duration
	rules     mb.Rules
	newRand   func() mb.Random
}

func NewRequestProcessor(
	sessionManager mc.SessionManager,
	gameManager mb.GameManager,
	optFuncs ...Option,
) *RequestProcessor {
	rp := &RequestProcessor{
		sessionManager: sessionManager,
		gameManager:    gameManager,
		stage:          StageDev,
		moveDelay:      DefaultMoveDelay,
		rules:          mb.StandardRules,
		newRand: func() mb.Random {
			return mb.NewRandom(time.Now().UnixNano())
		},
	}

	for _, opt := range optFuncs {
		if err := opt(rp); err != nil {
			panic(err)
		}
	}
	return rp
}

// The analytics row of a server is keyed by the
// address the client connected to.
func getServerIpNet(localAddr net.Addr) pqtype.Inet {
	host, _, err := net.SplitHostPort(localAddr.String())
	if err != nil {
		log.Warn("failed to extract host from local addr", "addr", localAddr.String(), "err", err)
		return pqtype.Inet{}
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return pqtype.Inet{}
	}

	bits := 128
	if ip4 := ip.To4(); ip4 != nil {
		ip, bits = ip4, 32
	}
	return pqtype.Inet{IPNet: net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)}, Valid: true}
}

func (rp *RequestProcessor) recordAnalytics(serverIp pqtype.Inet, incr func(*sqlc.AnalyticsManager, context.Context, pqtype.Inet) error) {
	if rp.dbManager == nil || !serverIp.Valid {
		return
	}

	// for now not killing the game for it
	if err := incr(rp.dbManager.Analytics, context.Background(), serverIp); err != nil {
		log.Error("failed to record analytics", "err", err)
	}
}

func (rp *RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("could not upgrade connection", "err", err)
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	switch sessionIdQuery {
	case "":
		log.Info("a new connection established", "remote", conn.RemoteAddr().String())
		rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))

	default:
		if err := rp.sessionManager.ReconnectSession(sessionIdQuery, conn); err != nil {
			// This either means an expired session or invalid session ID
			_ = conn.WriteJSON(mc.NewMessage[mc.NoPayload](mc.CodeReceivedInvalidSessionID))
			conn.Close()
			return
		}
		log.Info("session reconnected", "session", sessionIdQuery, "remote", conn.RemoteAddr().String())
	}
}

func (rp *RequestProcessor) terminateGame(game *mb.Game) {
	rp.gameManager.TerminateGame(game.Uuid())
	log.Info("game terminated", "game", game.Uuid(), "lifetime", time.Since(game.CreatedAt()).Round(time.Second))
}

func (rp *RequestProcessor) write(session *mc.Session, msg interface{}) error {
	return rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON)
}

// After a match-ending shot both the attack and the
// end game message go out, and the win is counted.
func (rp *RequestProcessor) endGame(session *mc.Session, serverIp pqtype.Inet, m mb.Match) error {
	log.Info("match is over", "session", session.Id(), "winner", m.Winner())
	rp.recordAnalytics(serverIp, func(a *sqlc.AnalyticsManager, ctx context.Context, ip pqtype.Inet) error {
		return a.IncrementWinsCount(ctx, ip, m.Winner())
	})
	return rp.write(session, NewEndGameMessage(m))
}

func (rp *RequestProcessor) processSessionRequests(session *mc.Session) {
	sessionId := session.Id()

	defer func() {
		if game := session.Game(); game != nil {
			rp.terminateGame(game)
		}
		if session.Conn() != nil {
			session.Conn().Close()
		}
		rp.sessionManager.TerminateSession(sessionId)
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.write(session, resp); err != nil {
		return
	}

	serverIp := getServerIpNet(session.Conn().LocalAddr())

sessionLoop:
	for {
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// Happens after retries, the session
			// connection could not be resolved
			break sessionLoop
		}

		code, err := rp.sessionManager.FetchCodeFromMsg(payload)
		if err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = rp.write(session, msg); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		req := NewRequest(payload)
		game := session.Game()

		switch code {
		case mc.CodeNewGame:
			if game != nil {
				rp.terminateGame(game)
			}
			rp.recordAnalytics(serverIp, (*sqlc.AnalyticsManager).IncrementGamesCreatedCount)

			newGame, respMsg := req.HandleNewGame(rp.gameManager, rp.rules, rp.newRand())
			session.SetGame(newGame)
			log.Info("new game", "session", sessionId, "game", newGame.Uuid())

			if err := rp.write(session, respMsg); err != nil {
				break sessionLoop
			}

		case mc.CodeSelectShip:
			if err := rp.write(session, req.HandleSelectShip(game, sessionId)); err != nil {
				break sessionLoop
			}

		case mc.CodeToggleOrientation:
			if err := rp.write(session, req.HandleToggleOrientation(game, sessionId)); err != nil {
				break sessionLoop
			}

		case mc.CodePlaceShip:
			if err := rp.write(session, req.HandlePlaceShip(game, sessionId)); err != nil {
				break sessionLoop
			}

		case mc.CodeRandomPlacement:
			if err := rp.write(session, req.HandleRandomPlacement(game, sessionId)); err != nil {
				break sessionLoop
			}

		case mc.CodeUndoPlacement:
			if err := rp.write(session, req.HandleUndoPlacement(game, sessionId)); err != nil {
				break sessionLoop
			}

		case mc.CodeStartBattle:
			if err := rp.write(session, req.HandleStartBattle(game, sessionId)); err != nil {
				break sessionLoop
			}

		// The player's shot is answered right away. Unless it ended
		// the match, the computer fires back after the move delay.
		case mc.CodeAttack:
			m, respMsg := req.HandleAttack(game, sessionId)
			if err := rp.write(session, respMsg); err != nil {
				break sessionLoop
			}

			if respMsg.Error != nil {
				continue sessionLoop
			}

			if m.IsOver() {
				if err := rp.endGame(session, serverIp, m); err != nil {
					break sessionLoop
				}
				continue sessionLoop
			}

			time.Sleep(rp.moveDelay)

			m, enemyMsg := req.HandleEnemyAttack(game)
			if err := rp.write(session, enemyMsg); err != nil {
				break sessionLoop
			}

			if enemyMsg.Error == nil && m.IsOver() {
				if err := rp.endGame(session, serverIp, m); err != nil {
					break sessionLoop
				}
			}

		case mc.CodeRestart:
			respMsg := req.HandleRestart(game, sessionId)
			if respMsg.Error == nil {
				rp.recordAnalytics(serverIp, (*sqlc.AnalyticsManager).IncrementRestartsCalledCount)
			}

			if err := rp.write(session, respMsg); err != nil {
				break sessionLoop
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			log.Warn("invalid signal", "session", sessionId, "code", code)
			if err := rp.write(session, respInvalidSignal); err != nil {
				break sessionLoop
			}
		}
	}
}

// Stage is exposed for the server binary's startup log
func (rp *RequestProcessor) Stage() string {
	return rp.stage
}

