package game

// Validate verifica as pré-condições de um evento contra o snapshot carregado.
// Não faz I/O; um snapshot nil significa sessão inexistente.
func Validate(snap *Snapshot, ev Event) error {
	if snap == nil {
		return ErrSessionNotFound
	}

	switch ev.Kind {
	case EventPlayerJoined:
		if err := checkIdentity(ev); err != nil {
			return err
		}
		if snap.Session.Started {
			return ErrAlreadyStarted
		}

	case EventGameStarted:
		if snap.Session.Started {
			return ErrAlreadyStarted
		}
		if !snap.IsGameMaster(ev.ActingUserID) {
			return ErrNotGameMaster
		}

	case EventQuestionSelected:
		if !snap.Session.Started {
			return ErrNotStarted
		}
		if _, ok := snap.Participant(ev.ActingUserID); !ok {
			return ErrNotParticipant
		}
		if cur, ok := snap.CurrentQuestion(); ok && !cur.IsAnswered {
			return ErrQuestionOpen
		}
		if ev.QuestionID == "" {
			return &RequiredFieldError{Field: "questionId"}
		}
		target, ok := snap.Question(ev.QuestionID)
		if !ok {
			return ErrQuestionNotFound
		}
		if target.IsAnswered {
			return ErrAlreadyAnswered
		}
		if err := checkTurn(snap, ev.ActingUserID); err != nil {
			return err
		}

	case EventAnswerSubmitted, EventQuestionRobbed:
		if !snap.Session.Started {
			return ErrNotStarted
		}
		p, ok := snap.Participant(ev.ActingUserID)
		if !ok {
			return ErrNotParticipant
		}
		if p.IsGameMaster {
			return ErrMasterCannotPlay
		}
		if ev.QuestionID == "" {
			return &RequiredFieldError{Field: "questionId"}
		}
		target, ok := snap.Question(ev.QuestionID)
		if !ok {
			return ErrQuestionNotFound
		}
		if target.IsAnswered {
			return ErrAlreadyAnswered
		}
		if !target.IsCurrentQuestion {
			return ErrQuestionNotActive
		}
		if ev.Answer == "" {
			return &RequiredFieldError{Field: "answer"}
		}
		if ev.Kind == EventQuestionRobbed && !target.IsRobbingAllowed {
			return ErrRobbingNotAllowed
		}
		if err := checkTurn(snap, ev.ActingUserID); err != nil {
			return err
		}

	case EventPlayerLeft:
		if err := checkIdentity(ev); err != nil {
			return err
		}
		p, ok := snap.Participant(ev.UserID)
		if !ok {
			return ErrNotParticipant
		}
		if p.IsGameMaster {
			return ErrMasterCannotLeave
		}

	case EventGameCancelled:
		if !snap.IsGameMaster(ev.ActingUserID) {
			return ErrNotGameMaster
		}

	case EventNextPlayerSelected:
		if !snap.IsGameMaster(ev.ActingUserID) {
			return ErrNotGameMaster
		}
		if !snap.Session.Started {
			return ErrNotStarted
		}

	case EventQuestionRobbingIsAllowed:
		if !snap.IsGameMaster(ev.ActingUserID) {
			return ErrNotGameMaster
		}
		if !snap.Session.Started {
			return ErrNotStarted
		}
		if _, ok := snap.CurrentQuestion(); !ok {
			return ErrNoQuestion
		}
	}

	return nil
}

func checkIdentity(ev Event) error {
	if ev.UserID == "" {
		return &RequiredFieldError{Field: "userId"}
	}
	if ev.UserID != ev.ActingUserID {
		return ErrIdentityMismatch
	}
	return nil
}

// checkTurn aplica a regra de posse da vez: com a pergunta atual em aberto e o roubo
// liberado, qualquer participante pode agir; nos demais casos apenas quem tem a vez.
func checkTurn(snap *Snapshot, userID string) error {
	if cur, ok := snap.CurrentQuestion(); ok && !cur.IsAnswered && cur.IsRobbingAllowed {
		return nil
	}
	p, ok := snap.Participant(userID)
	if !ok || !p.IsCurrentTurn {
		return ErrNotYourTurn
	}
	return nil
}
