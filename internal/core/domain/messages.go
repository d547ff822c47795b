package domain

// Fixed messages rendered to API callers. The presentation layer matches on
// some of them, so they must not change.
const (
	MsgClaimRequired     = "Email requis pour authentification"
	MsgUserNotFound      = "Utilisateur non trouvé"
	MsgAdminRequired     = "Accès refusé - Droits administrateur requis"
	MsgAuthFailure       = "Erreur authentification"
	MsgRegisterMissing   = "Nom, email et mot de passe requis"
	MsgEmailTaken        = "Un compte existe déjà avec cet email"
	MsgEmailTakenRace    = "Email déjà utilisé"
	MsgRegisterFailure   = "Erreur inscription"
	MsgRegistered        = "Inscription réussie"
	MsgRegisteredAdmin   = "Inscription réussie - Vous êtes maintenant administrateur !"
	MsgLoginMissing      = "Email et mot de passe requis"
	MsgBadCredentials    = "Email ou mot de passe incorrect"
	MsgLoginFailure      = "Erreur connexion"
	MsgLoggedIn          = "Connexion réussie"
	MsgPromoted          = "Utilisateur promu administrateur"
	MsgPromoteFailure    = "Erreur promotion utilisateur"
	MsgListUsersFailure  = "Erreur récupération utilisateurs"
	MsgContactMissing    = "Nom, email et message requis"
	MsgContactFailure    = "Erreur envoi message"
	MsgContactSent       = "Message envoyé avec succès"
	MsgFormationNotFound = "Formation non trouvée"
	MsgListFailure       = "Erreur récupération formations"
	MsgGetFailure        = "Erreur récupération formation"
	MsgAdminListFailure  = "Erreur récupération formations admin"
	MsgUpdateFailure     = "Erreur modification formation"
	MsgUpdated           = "Formation mise à jour avec succès"
	MsgNothingToUpdate   = "Aucun champ à modifier"
	MsgInvalidPrice      = "Prix invalide (décimal positif attendu)"
	MsgDeleteFailure     = "Erreur suppression formation"
	MsgDeleted           = "Formation supprimée avec succès"
	MsgInvalidStatus     = "Statut invalide (publie ou brouillon)"
	MsgStatusFailure     = "Erreur modification statut"
	MsgPublished         = "Formation publiée"
	MsgDrafted           = "Formation mise en brouillon"
	MsgInvalidSort       = "Tri invalide (prix_asc ou prix_desc)"
	MsgInvalidID         = "Identifiant invalide"
	MsgInvalidPayload    = "Données invalides"
	MsgInvalidToken      = "Jeton d'authentification invalide"
)
