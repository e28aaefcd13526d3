package session

import "errors"

// PeerAndTeacher pulls the first peer attempt and the first teacher
// reply out of a transcript. Mistake scoring compares exactly these
// two turns.
func PeerAndTeacher(turns []Turn) (peer, teacher string, err error) {
	peer, ok := firstByRole(turns, RolePeerAttempt)
	if !ok {
		return "", "", errors.New("transcript has no peer attempt")
	}
	teacher, ok = firstByRole(turns, RoleTeacherReply)
	if !ok {
		return "", "", errors.New("transcript has no teacher reply")
	}
	return peer, teacher, nil
}

func firstByRole(turns []Turn, role string) (string, bool) {
	for _, t := range turns {
		if t.Role == role {
			return t.Content, true
		}
	}
	return "", false
}
