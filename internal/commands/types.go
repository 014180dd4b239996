package commands

// CommandType tags a command and selects its reducer.
type CommandType string

const (
	TypeAttack  CommandType = "ATTACK"
	TypeStrike  CommandType = "STRIKE"
	TypeRange   CommandType = "RANGE"
	TypeDefend  CommandType = "DEFEND"
	TypeRetreat CommandType = "RETREAT"
	TypeMove    CommandType = "MOVE"
	TypeTarget  CommandType = "TARGET"
	TypeDone    CommandType = "DONE"
	TypeEquip   CommandType = "EQUIP"
	TypeUnequip CommandType = "UNEQUIP"

	TypeEngage        CommandType = "ENGAGE"
	TypeSessionCreate CommandType = "SESSION_CREATE"
	TypeSessionJoin   CommandType = "SESSION_JOIN"
	TypeSessionLeave  CommandType = "SESSION_LEAVE"
	TypeSessionStart  CommandType = "SESSION_START"
	TypeSessionPause  CommandType = "SESSION_PAUSE"
	TypeSessionResume CommandType = "SESSION_RESUME"

	TypePartyInvite  CommandType = "PARTY_INVITE"
	TypePartyAccept  CommandType = "PARTY_ACCEPT"
	TypePartyReject  CommandType = "PARTY_REJECT"
	TypePartyLeave   CommandType = "PARTY_LEAVE"
	TypePartyKick    CommandType = "PARTY_KICK"
	TypePartyDisband CommandType = "PARTY_DISBAND"
	TypePartyInspect CommandType = "PARTY_INSPECT"
)

// EventType names an observable fact.
type EventType string

const (
	EventSessionCreated EventType = "session.created"
	EventSessionStarted EventType = "session.started"
	EventSessionPaused  EventType = "session.paused"
	EventSessionResumed EventType = "session.resumed"

	EventCombatJoined        EventType = "combat.joined"
	EventCombatLeft          EventType = "combat.left"
	EventCombatAttacked      EventType = "combat.attacked"
	EventCombatStruck        EventType = "combat.struck"
	EventCombatShot          EventType = "combat.shot"
	EventCombatDefended      EventType = "combat.defended"
	EventCombatRetreated     EventType = "combat.retreated"
	EventCombatMoved         EventType = "combat.moved"
	EventCombatTargeted      EventType = "combat.targeted"
	EventCombatDone          EventType = "combat.done"
	EventCombatIncapacitated EventType = "combat.incapacitated"
	EventTurnStarted         EventType = "combat.turn_started"

	EventEquipped   EventType = "equipment.equipped"
	EventUnequipped EventType = "equipment.unequipped"
	EventActorMoved EventType = "actor.moved"

	EventPartyCreated      EventType = "party.created"
	EventPartyInvited      EventType = "party.invited"
	EventPartyJoined       EventType = "party.joined"
	EventPartyRejected     EventType = "party.rejected"
	EventPartyLeft         EventType = "party.left"
	EventPartyOwnerChanged EventType = "party.owner_changed"
	EventPartyKicked       EventType = "party.kicked"
	EventPartyDisbanded    EventType = "party.disbanded"
	EventPartyInspected    EventType = "party.inspected"
)
