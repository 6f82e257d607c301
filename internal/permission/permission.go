package permission

import "net/http"

var safeMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodOptions: true,
}

// IsSafeMethod indique si la méthode HTTP est une lecture pure.
func IsSafeMethod(method string) bool {
	return safeMethods[method]
}

// CanModify décide si la requête a le droit d'agir sur une ressource déjà
// résolue : lecture toujours autorisée, écriture réservée à l'auteur.
// Le retour est un bool nu, jamais une valeur enveloppée.
func CanModify(method, requesterID, authorID string) bool {
	return IsSafeMethod(method) || (requesterID != "" && requesterID == authorID)
}
