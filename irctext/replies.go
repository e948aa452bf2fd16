package irctext

import "strings"

// This file holds the typed variants for every supported numeric reply.
// Variant names follow the RPL_/ERR_ names of the protocol. Decoding
// tolerates extra trailing parameters; missing or malformed ones are
// rejected.

// ReplyUnknown holds a numeric reply whose code the catalog does not know.
type ReplyUnknown struct {
	UnknownCode int      `json:"code"`
	Params      []string `json:"params"`
}

func (r *ReplyUnknown) Code() int            { return r.UnknownCode }
func (r *ReplyUnknown) wireParams() []string { return r.Params }

// scanStrings fills each destination from the next parameter in order.
func (f *fields) scanStrings(dsts ...*string) error {
	for _, d := range dsts {
		p, err := f.next("param")
		if err != nil {
			return err
		}
		*d = p
	}
	return nil
}

type replyDecoder func(f *fields) (Reply, error)

// RplWelcome (001)
type RplWelcome struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*RplWelcome) Code() int              { return 1 }
func (r *RplWelcome) wireParams() []string { return []string{r.Client, r.Text} }

// RplYourHost (002)
type RplYourHost struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*RplYourHost) Code() int              { return 2 }
func (r *RplYourHost) wireParams() []string { return []string{r.Client, r.Text} }

// RplCreated (003)
type RplCreated struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*RplCreated) Code() int              { return 3 }
func (r *RplCreated) wireParams() []string { return []string{r.Client, r.Text} }

// RplMyInfo (004)
type RplMyInfo struct {
	Client         string `json:"client"`
	ServerName     string `json:"server_name"`
	Version        string `json:"version"`
	UserModes      string `json:"user_modes"`
	ChannelModes   string `json:"channel_modes"`
	ParamChanModes string `json:"param_channel_modes,omitempty"`
}

func (*RplMyInfo) Code() int { return 4 }
func (r *RplMyInfo) wireParams() []string {
	params := []string{r.Client, r.ServerName, r.Version, r.UserModes, r.ChannelModes}
	if r.ParamChanModes != "" {
		params = append(params, r.ParamChanModes)
	}
	return params
}

func decodeMyInfo(f *fields) (Reply, error) {
	r := &RplMyInfo{}
	if err := f.scanStrings(&r.Client, &r.ServerName, &r.Version, &r.UserModes, &r.ChannelModes); err != nil {
		return nil, err
	}
	r.ParamChanModes, _ = f.opt()
	return r, nil
}

// RplISupport (005)
type RplISupport struct {
	Client string          `json:"client"`
	Tokens []ISupportToken `json:"tokens"`
	Text   string          `json:"text"`
}

func (*RplISupport) Code() int { return 5 }
func (r *RplISupport) wireParams() []string {
	params := []string{r.Client}
	for _, tok := range r.Tokens {
		params = append(params, tok.String())
	}
	return append(params, r.Text)
}

func decodeISupport(f *fields) (Reply, error) {
	client, err := f.next("client")
	if err != nil {
		return nil, err
	}
	rest := f.rest()
	if len(rest) < 2 {
		return nil, &ParseError{Kind: ErrBadParamCount, Command: f.cmd}
	}
	r := &RplISupport{Client: client, Text: rest[len(rest)-1]}
	for _, tok := range rest[:len(rest)-1] {
		t, verr := ParseISupportToken(tok)
		if verr != nil {
			return nil, f.badField("token", verr)
		}
		r.Tokens = append(r.Tokens, t)
	}
	return r, nil
}

// RplBounce (010)
type RplBounce struct {
	Client string `json:"client"`
	Host   string `json:"host"`
	Port   uint64 `json:"port"`
	Text   string `json:"text"`
}

func (*RplBounce) Code() int { return 10 }
func (r *RplBounce) wireParams() []string {
	return []string{r.Client, r.Host, formatUint(r.Port), r.Text}
}

func decodeBounce(f *fields) (Reply, error) {
	r := &RplBounce{}
	if err := f.scanStrings(&r.Client, &r.Host); err != nil {
		return nil, err
	}
	port, err := f.uint("port")
	if err != nil {
		return nil, err
	}
	r.Port = port
	return r, f.scanStrings(&r.Text)
}

// RplStatsCommands (212)
type RplStatsCommands struct {
	Client  string   `json:"client"`
	Command string   `json:"command"`
	Counts  []string `json:"counts,omitempty"`
}

func (*RplStatsCommands) Code() int { return 212 }
func (r *RplStatsCommands) wireParams() []string {
	return append([]string{r.Client, r.Command}, r.Counts...)
}

func decodeStatsCommands(f *fields) (Reply, error) {
	r := &RplStatsCommands{}
	if err := f.scanStrings(&r.Client, &r.Command); err != nil {
		return nil, err
	}
	r.Counts = f.rest()
	return r, nil
}

// RplEndOfStats (219)
type RplEndOfStats struct {
	Client string `json:"client"`
	Query  string `json:"query"`
	Text   string `json:"text"`
}

func (*RplEndOfStats) Code() int              { return 219 }
func (r *RplEndOfStats) wireParams() []string { return []string{r.Client, r.Query, r.Text} }

// RplUModeIs (221)
type RplUModeIs struct {
	Client string     `json:"client"`
	Modes  ModeString `json:"modes"`
}

func (*RplUModeIs) Code() int { return 221 }
func (r *RplUModeIs) wireParams() []string {
	return []string{r.Client, r.Modes.String()}
}

func decodeUModeIs(f *fields) (Reply, error) {
	client, err := f.next("client")
	if err != nil {
		return nil, err
	}
	s, err := f.next("modes")
	if err != nil {
		return nil, err
	}
	if s != "" && s[0] != '+' && s[0] != '-' {
		s = "+" + s
	}
	ms, verr := ParseModeString(s)
	if verr != nil {
		return nil, f.badField("modes", verr)
	}
	return &RplUModeIs{Client: client, Modes: ms}, nil
}

// RplStatsUptime (242)
type RplStatsUptime struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*RplStatsUptime) Code() int              { return 242 }
func (r *RplStatsUptime) wireParams() []string { return []string{r.Client, r.Text} }

// RplStatsConn (250) is nonstandard but sent by several ircds during the
// welcome burst.
type RplStatsConn struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*RplStatsConn) Code() int              { return 250 }
func (r *RplStatsConn) wireParams() []string { return []string{r.Client, r.Text} }

// RplLuserClient (251)
type RplLuserClient struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*RplLuserClient) Code() int              { return 251 }
func (r *RplLuserClient) wireParams() []string { return []string{r.Client, r.Text} }

// RplLuserOp (252)
type RplLuserOp struct {
	Client string `json:"client"`
	Ops    uint64 `json:"ops"`
	Text   string `json:"text"`
}

func (*RplLuserOp) Code() int { return 252 }
func (r *RplLuserOp) wireParams() []string {
	return []string{r.Client, formatUint(r.Ops), r.Text}
}

// RplLuserUnknown (253)
type RplLuserUnknown struct {
	Client      string `json:"client"`
	Connections uint64 `json:"connections"`
	Text        string `json:"text"`
}

func (*RplLuserUnknown) Code() int { return 253 }
func (r *RplLuserUnknown) wireParams() []string {
	return []string{r.Client, formatUint(r.Connections), r.Text}
}

// RplLuserChannels (254)
type RplLuserChannels struct {
	Client   string `json:"client"`
	Channels uint64 `json:"channels"`
	Text     string `json:"text"`
}

func (*RplLuserChannels) Code() int { return 254 }
func (r *RplLuserChannels) wireParams() []string {
	return []string{r.Client, formatUint(r.Channels), r.Text}
}

// RplLuserMe (255)
type RplLuserMe struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*RplLuserMe) Code() int              { return 255 }
func (r *RplLuserMe) wireParams() []string { return []string{r.Client, r.Text} }

// RplAdminMe (256)
type RplAdminMe struct {
	Client string `json:"client"`
	Server string `json:"server,omitempty"`
	Text   string `json:"text"`
}

func (*RplAdminMe) Code() int { return 256 }
func (r *RplAdminMe) wireParams() []string {
	if r.Server != "" {
		return []string{r.Client, r.Server, r.Text}
	}
	return []string{r.Client, r.Text}
}

func decodeAdminMe(f *fields) (Reply, error) {
	r := &RplAdminMe{}
	if err := f.scanStrings(&r.Client, &r.Text); err != nil {
		return nil, err
	}
	if p, ok := f.opt(); ok {
		r.Server, r.Text = r.Text, p
	}
	return r, nil
}

// RplAdminLoc1 (257)
type RplAdminLoc1 struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*RplAdminLoc1) Code() int              { return 257 }
func (r *RplAdminLoc1) wireParams() []string { return []string{r.Client, r.Text} }

// RplAdminLoc2 (258)
type RplAdminLoc2 struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*RplAdminLoc2) Code() int              { return 258 }
func (r *RplAdminLoc2) wireParams() []string { return []string{r.Client, r.Text} }

// RplAdminEmail (259)
type RplAdminEmail struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*RplAdminEmail) Code() int              { return 259 }
func (r *RplAdminEmail) wireParams() []string { return []string{r.Client, r.Text} }

// RplTryAgain (263)
type RplTryAgain struct {
	Client  string `json:"client"`
	Command string `json:"command"`
	Text    string `json:"text"`
}

func (*RplTryAgain) Code() int              { return 263 }
func (r *RplTryAgain) wireParams() []string { return []string{r.Client, r.Command, r.Text} }

// RplLocalUsers (265)
type RplLocalUsers struct {
	Client string `json:"client"`
	Users  uint64 `json:"users,omitempty"`
	Max    uint64 `json:"max,omitempty"`
	Text   string `json:"text"`
}

func (*RplLocalUsers) Code() int { return 265 }
func (r *RplLocalUsers) wireParams() []string {
	if r.Users != 0 || r.Max != 0 {
		return []string{r.Client, formatUint(r.Users), formatUint(r.Max), r.Text}
	}
	return []string{r.Client, r.Text}
}

// RplGlobalUsers (266)
type RplGlobalUsers struct {
	Client string `json:"client"`
	Users  uint64 `json:"users,omitempty"`
	Max    uint64 `json:"max,omitempty"`
	Text   string `json:"text"`
}

func (*RplGlobalUsers) Code() int { return 266 }
func (r *RplGlobalUsers) wireParams() []string {
	if r.Users != 0 || r.Max != 0 {
		return []string{r.Client, formatUint(r.Users), formatUint(r.Max), r.Text}
	}
	return []string{r.Client, r.Text}
}

// decodeUserCounts handles the 265/266 forms with and without the explicit
// count parameters.
func decodeUserCounts(mk func() (*uint64, *uint64, *string, *string, Reply)) replyDecoder {
	return func(f *fields) (Reply, error) {
		users, max, client, text, r := mk()
		if err := f.scanStrings(client); err != nil {
			return nil, err
		}
		switch len(f.params) - f.i {
		case 0:
			return nil, &ParseError{Kind: ErrBadParamCount, Command: f.cmd}
		case 1:
			return r, f.scanStrings(text)
		default:
			u, err := f.uint("users")
			if err != nil {
				return nil, err
			}
			m, err := f.uint("max")
			if err != nil {
				return nil, err
			}
			*users, *max = u, m
			return r, f.scanStrings(text)
		}
	}
}

// RplWhoIsCertFP (276)
type RplWhoIsCertFP struct {
	Client string `json:"client"`
	Nick   string `json:"nick"`
	Text   string `json:"text"`
}

func (*RplWhoIsCertFP) Code() int              { return 276 }
func (r *RplWhoIsCertFP) wireParams() []string { return []string{r.Client, r.Nick, r.Text} }

// RplNone (300) is a dummy numeric with no defined shape.
type RplNone struct {
	Params []string `json:"params,omitempty"`
}

func (*RplNone) Code() int              { return 300 }
func (r *RplNone) wireParams() []string { return r.Params }

// RplAway (301)
type RplAway struct {
	Client string `json:"client"`
	Nick   string `json:"nick"`
	Text   string `json:"text"`
}

func (*RplAway) Code() int              { return 301 }
func (r *RplAway) wireParams() []string { return []string{r.Client, r.Nick, r.Text} }

// RplUserHost (302)
type RplUserHost struct {
	Client  string   `json:"client"`
	Entries []string `json:"entries"`
}

func (*RplUserHost) Code() int { return 302 }
func (r *RplUserHost) wireParams() []string {
	return []string{r.Client, strings.Join(r.Entries, " ")}
}

func decodeUserHost(f *fields) (Reply, error) {
	r := &RplUserHost{}
	var entries string
	if err := f.scanStrings(&r.Client, &entries); err != nil {
		return nil, err
	}
	r.Entries = strings.Fields(entries)
	return r, nil
}

// RplUnAway (305)
type RplUnAway struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*RplUnAway) Code() int              { return 305 }
func (r *RplUnAway) wireParams() []string { return []string{r.Client, r.Text} }

// RplNowAway (306)
type RplNowAway struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*RplNowAway) Code() int              { return 306 }
func (r *RplNowAway) wireParams() []string { return []string{r.Client, r.Text} }

// RplWhoIsRegNick (307)
type RplWhoIsRegNick struct {
	Client string `json:"client"`
	Nick   string `json:"nick"`
	Text   string `json:"text"`
}

func (*RplWhoIsRegNick) Code() int              { return 307 }
func (r *RplWhoIsRegNick) wireParams() []string { return []string{r.Client, r.Nick, r.Text} }

// RplWhoIsUser (311)
type RplWhoIsUser struct {
	Client   string `json:"client"`
	Nick     string `json:"nick"`
	User     string `json:"user"`
	Host     string `json:"host"`
	Realname string `json:"realname"`
}

func (*RplWhoIsUser) Code() int { return 311 }
func (r *RplWhoIsUser) wireParams() []string {
	return []string{r.Client, r.Nick, r.User, r.Host, "*", r.Realname}
}

func decodeWhoIsUser(f *fields) (Reply, error) {
	r := &RplWhoIsUser{}
	var star string
	return r, f.scanStrings(&r.Client, &r.Nick, &r.User, &r.Host, &star, &r.Realname)
}

// RplWhoIsServer (312)
type RplWhoIsServer struct {
	Client string `json:"client"`
	Nick   string `json:"nick"`
	Server string `json:"server"`
	Info   string `json:"info"`
}

func (*RplWhoIsServer) Code() int { return 312 }
func (r *RplWhoIsServer) wireParams() []string {
	return []string{r.Client, r.Nick, r.Server, r.Info}
}

// RplWhoIsOperator (313)
type RplWhoIsOperator struct {
	Client string `json:"client"`
	Nick   string `json:"nick"`
	Text   string `json:"text"`
}

func (*RplWhoIsOperator) Code() int              { return 313 }
func (r *RplWhoIsOperator) wireParams() []string { return []string{r.Client, r.Nick, r.Text} }

// RplWhoWasUser (314)
type RplWhoWasUser struct {
	Client   string `json:"client"`
	Nick     string `json:"nick"`
	User     string `json:"user"`
	Host     string `json:"host"`
	Realname string `json:"realname"`
}

func (*RplWhoWasUser) Code() int { return 314 }
func (r *RplWhoWasUser) wireParams() []string {
	return []string{r.Client, r.Nick, r.User, r.Host, "*", r.Realname}
}

func decodeWhoWasUser(f *fields) (Reply, error) {
	r := &RplWhoWasUser{}
	var star string
	return r, f.scanStrings(&r.Client, &r.Nick, &r.User, &r.Host, &star, &r.Realname)
}

// RplEndOfWho (315)
type RplEndOfWho struct {
	Client string `json:"client"`
	Mask   string `json:"mask"`
	Text   string `json:"text"`
}

func (*RplEndOfWho) Code() int              { return 315 }
func (r *RplEndOfWho) wireParams() []string { return []string{r.Client, r.Mask, r.Text} }

// RplWhoIsIdle (317)
type RplWhoIsIdle struct {
	Client string     `json:"client"`
	Nick   string     `json:"nick"`
	Idle   uint64     `json:"idle"`
	Signon *Timestamp `json:"signon,omitempty"`
	Text   string     `json:"text"`
}

func (*RplWhoIsIdle) Code() int { return 317 }
func (r *RplWhoIsIdle) wireParams() []string {
	params := []string{r.Client, r.Nick, formatUint(r.Idle)}
	if r.Signon != nil {
		params = append(params, r.Signon.String())
	}
	return append(params, r.Text)
}

func decodeWhoIsIdle(f *fields) (Reply, error) {
	r := &RplWhoIsIdle{}
	if err := f.scanStrings(&r.Client, &r.Nick); err != nil {
		return nil, err
	}
	idle, err := f.uint("idle")
	if err != nil {
		return nil, err
	}
	r.Idle = idle
	if len(f.params)-f.i >= 2 {
		ts, err := f.timestamp("signon")
		if err != nil {
			return nil, err
		}
		r.Signon = &ts
	}
	return r, f.scanStrings(&r.Text)
}

// RplEndOfWhoIs (318)
type RplEndOfWhoIs struct {
	Client string `json:"client"`
	Nick   string `json:"nick"`
	Text   string `json:"text"`
}

func (*RplEndOfWhoIs) Code() int              { return 318 }
func (r *RplEndOfWhoIs) wireParams() []string { return []string{r.Client, r.Nick, r.Text} }

// RplWhoIsChannels (319)
type RplWhoIsChannels struct {
	Client   string   `json:"client"`
	Nick     string   `json:"nick"`
	Channels []string `json:"channels"` // entries keep their membership prefixes
}

func (*RplWhoIsChannels) Code() int { return 319 }
func (r *RplWhoIsChannels) wireParams() []string {
	return []string{r.Client, r.Nick, strings.Join(r.Channels, " ")}
}

func decodeWhoIsChannels(f *fields) (Reply, error) {
	r := &RplWhoIsChannels{}
	var chans string
	if err := f.scanStrings(&r.Client, &r.Nick, &chans); err != nil {
		return nil, err
	}
	r.Channels = strings.Fields(chans)
	return r, nil
}

// RplWhoIsSpecial (320)
type RplWhoIsSpecial struct {
	Client string `json:"client"`
	Nick   string `json:"nick"`
	Text   string `json:"text"`
}

func (*RplWhoIsSpecial) Code() int              { return 320 }
func (r *RplWhoIsSpecial) wireParams() []string { return []string{r.Client, r.Nick, r.Text} }

// RplListStart (321)
type RplListStart struct {
	Client string   `json:"client"`
	Params []string `json:"params,omitempty"`
}

func (*RplListStart) Code() int { return 321 }
func (r *RplListStart) wireParams() []string {
	return append([]string{r.Client}, r.Params...)
}

func decodeListStart(f *fields) (Reply, error) {
	r := &RplListStart{}
	if err := f.scanStrings(&r.Client); err != nil {
		return nil, err
	}
	r.Params = f.rest()
	return r, nil
}

// RplList (322)
type RplList struct {
	Client  string  `json:"client"`
	Channel Channel `json:"channel"`
	Clients uint64  `json:"clients"`
	Topic   string  `json:"topic"`
}

func (*RplList) Code() int { return 322 }
func (r *RplList) wireParams() []string {
	return []string{r.Client, string(r.Channel), formatUint(r.Clients), r.Topic}
}

func decodeList322(f *fields) (Reply, error) {
	r := &RplList{}
	if err := f.scanStrings(&r.Client); err != nil {
		return nil, err
	}
	ch, err := f.channel("channel")
	if err != nil {
		return nil, err
	}
	r.Channel = ch
	clients, err := f.uint("clients")
	if err != nil {
		return nil, err
	}
	r.Clients = clients
	return r, f.scanStrings(&r.Topic)
}

// RplListEnd (323)
type RplListEnd struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*RplListEnd) Code() int              { return 323 }
func (r *RplListEnd) wireParams() []string { return []string{r.Client, r.Text} }

// RplChannelModeIs (324)
type RplChannelModeIs struct {
	Client  string     `json:"client"`
	Channel Channel    `json:"channel"`
	Modes   ModeString `json:"modes"`
	Args    []string   `json:"args,omitempty"`
}

func (*RplChannelModeIs) Code() int { return 324 }
func (r *RplChannelModeIs) wireParams() []string {
	return append([]string{r.Client, string(r.Channel), r.Modes.String()}, r.Args...)
}

func decodeChannelModeIs(f *fields) (Reply, error) {
	r := &RplChannelModeIs{}
	if err := f.scanStrings(&r.Client); err != nil {
		return nil, err
	}
	ch, err := f.channel("channel")
	if err != nil {
		return nil, err
	}
	r.Channel = ch
	s, err := f.next("modes")
	if err != nil {
		return nil, err
	}
	if s != "" && s[0] != '+' && s[0] != '-' {
		s = "+" + s
	}
	ms, verr := ParseModeString(s)
	if verr != nil {
		return nil, f.badField("modes", verr)
	}
	r.Modes = ms
	r.Args = f.rest()
	return r, nil
}

// RplCreationTime (329)
type RplCreationTime struct {
	Client  string    `json:"client"`
	Channel Channel   `json:"channel"`
	Created Timestamp `json:"created"`
}

func (*RplCreationTime) Code() int { return 329 }
func (r *RplCreationTime) wireParams() []string {
	return []string{r.Client, string(r.Channel), r.Created.String()}
}

func decodeCreationTime(f *fields) (Reply, error) {
	r := &RplCreationTime{}
	if err := f.scanStrings(&r.Client); err != nil {
		return nil, err
	}
	ch, err := f.channel("channel")
	if err != nil {
		return nil, err
	}
	r.Channel = ch
	ts, err := f.timestamp("created")
	if err != nil {
		return nil, err
	}
	r.Created = ts
	return r, nil
}

// RplWhoIsAccount (330)
type RplWhoIsAccount struct {
	Client  string `json:"client"`
	Nick    string `json:"nick"`
	Account string `json:"account"`
	Text    string `json:"text"`
}

func (*RplWhoIsAccount) Code() int { return 330 }
func (r *RplWhoIsAccount) wireParams() []string {
	return []string{r.Client, r.Nick, r.Account, r.Text}
}

// RplNoTopic (331)
type RplNoTopic struct {
	Client  string  `json:"client"`
	Channel Channel `json:"channel"`
	Text    string  `json:"text"`
}

func (*RplNoTopic) Code() int { return 331 }
func (r *RplNoTopic) wireParams() []string {
	return []string{r.Client, string(r.Channel), r.Text}
}

// RplTopic (332)
type RplTopic struct {
	Client  string  `json:"client"`
	Channel Channel `json:"channel"`
	Topic   string  `json:"topic"`
}

func (*RplTopic) Code() int { return 332 }
func (r *RplTopic) wireParams() []string {
	return []string{r.Client, string(r.Channel), r.Topic}
}

// RplTopicWhoTime (333). The setter field accepts both a bare nickname and
// a full nick!user@host mask.
type RplTopicWhoTime struct {
	Client  string    `json:"client"`
	Channel Channel   `json:"channel"`
	Setter  *Source   `json:"setter"`
	TimeSet Timestamp `json:"time_set"`
}

func (*RplTopicWhoTime) Code() int { return 333 }
func (r *RplTopicWhoTime) wireParams() []string {
	return []string{r.Client, string(r.Channel), r.Setter.String(), r.TimeSet.String()}
}

func decodeTopicWhoTime(f *fields) (Reply, error) {
	r := &RplTopicWhoTime{}
	if err := f.scanStrings(&r.Client); err != nil {
		return nil, err
	}
	ch, err := f.channel("channel")
	if err != nil {
		return nil, err
	}
	r.Channel = ch
	setter, err := f.next("setter")
	if err != nil {
		return nil, err
	}
	src, verr := ParseSource(setter)
	if verr != nil {
		return nil, f.badField("setter", verr)
	}
	r.Setter = src
	ts, err := f.timestamp("time_set")
	if err != nil {
		return nil, err
	}
	r.TimeSet = ts
	return r, nil
}

// RplInviteList (336)
type RplInviteList struct {
	Client  string  `json:"client"`
	Channel Channel `json:"channel"`
}

func (*RplInviteList) Code() int { return 336 }
func (r *RplInviteList) wireParams() []string {
	return []string{r.Client, string(r.Channel)}
}

func decodeInviteList(f *fields) (Reply, error) {
	r := &RplInviteList{}
	if err := f.scanStrings(&r.Client); err != nil {
		return nil, err
	}
	ch, err := f.channel("channel")
	if err != nil {
		return nil, err
	}
	r.Channel = ch
	return r, nil
}

// RplEndOfInviteList (337)
type RplEndOfInviteList struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*RplEndOfInviteList) Code() int              { return 337 }
func (r *RplEndOfInviteList) wireParams() []string { return []string{r.Client, r.Text} }

// RplWhoIsActually (338)
type RplWhoIsActually struct {
	Client string   `json:"client"`
	Nick   string   `json:"nick"`
	Params []string `json:"params"`
}

func (*RplWhoIsActually) Code() int { return 338 }
func (r *RplWhoIsActually) wireParams() []string {
	return append([]string{r.Client, r.Nick}, r.Params...)
}

func decodeWhoIsActually(f *fields) (Reply, error) {
	r := &RplWhoIsActually{}
	if err := f.scanStrings(&r.Client, &r.Nick); err != nil {
		return nil, err
	}
	r.Params = f.rest()
	return r, nil
}

// RplInviting (341)
type RplInviting struct {
	Client  string  `json:"client"`
	Nick    string  `json:"nick"`
	Channel Channel `json:"channel"`
}

func (*RplInviting) Code() int { return 341 }
func (r *RplInviting) wireParams() []string {
	return []string{r.Client, r.Nick, string(r.Channel)}
}

func decodeInviting(f *fields) (Reply, error) {
	r := &RplInviting{}
	if err := f.scanStrings(&r.Client, &r.Nick); err != nil {
		return nil, err
	}
	ch, err := f.channel("channel")
	if err != nil {
		return nil, err
	}
	r.Channel = ch
	return r, nil
}

// RplInvExList (346)
type RplInvExList struct {
	Client  string  `json:"client"`
	Channel Channel `json:"channel"`
	Mask    string  `json:"mask"`
}

func (*RplInvExList) Code() int { return 346 }
func (r *RplInvExList) wireParams() []string {
	return []string{r.Client, string(r.Channel), r.Mask}
}

// RplEndOfInvExList (347)
type RplEndOfInvExList struct {
	Client  string  `json:"client"`
	Channel Channel `json:"channel"`
	Text    string  `json:"text"`
}

func (*RplEndOfInvExList) Code() int { return 347 }
func (r *RplEndOfInvExList) wireParams() []string {
	return []string{r.Client, string(r.Channel), r.Text}
}

// RplExceptList (348)
type RplExceptList struct {
	Client  string  `json:"client"`
	Channel Channel `json:"channel"`
	Mask    string  `json:"mask"`
}

func (*RplExceptList) Code() int { return 348 }
func (r *RplExceptList) wireParams() []string {
	return []string{r.Client, string(r.Channel), r.Mask}
}

// RplEndOfExceptList (349)
type RplEndOfExceptList struct {
	Client  string  `json:"client"`
	Channel Channel `json:"channel"`
	Text    string  `json:"text"`
}

func (*RplEndOfExceptList) Code() int { return 349 }
func (r *RplEndOfExceptList) wireParams() []string {
	return []string{r.Client, string(r.Channel), r.Text}
}

// decodeChannelMask handles the 346/348 shape.
func decodeChannelMask(mk func(client string, ch Channel, mask string) Reply) replyDecoder {
	return func(f *fields) (Reply, error) {
		var client string
		if err := f.scanStrings(&client); err != nil {
			return nil, err
		}
		ch, err := f.channel("channel")
		if err != nil {
			return nil, err
		}
		var mask string
		if err := f.scanStrings(&mask); err != nil {
			return nil, err
		}
		return mk(client, ch, mask), nil
	}
}

// RplVersion (351). The trailing comment is optional.
type RplVersion struct {
	Client  string `json:"client"`
	Version string `json:"version"`
	Server  string `json:"server"`
	Comment string `json:"comment,omitempty"`
}

func (*RplVersion) Code() int { return 351 }
func (r *RplVersion) wireParams() []string {
	params := []string{r.Client, r.Version, r.Server}
	if r.Comment != "" {
		params = append(params, r.Comment)
	}
	return params
}

func decodeVersion(f *fields) (Reply, error) {
	r := &RplVersion{}
	if err := f.scanStrings(&r.Client, &r.Version, &r.Server); err != nil {
		return nil, err
	}
	r.Comment, _ = f.opt()
	return r, nil
}

// RplWhoReply (352)
type RplWhoReply struct {
	Client   string `json:"client"`
	Channel  string `json:"channel"` // "*" when not channel-scoped
	User     string `json:"user"`
	Host     string `json:"host"`
	Server   string `json:"server"`
	Nick     string `json:"nick"`
	Flags    string `json:"flags"`
	Hops     uint64 `json:"hops"`
	Realname string `json:"realname"`
}

func (*RplWhoReply) Code() int { return 352 }
func (r *RplWhoReply) wireParams() []string {
	trailing := formatUint(r.Hops) + " " + r.Realname
	return []string{r.Client, r.Channel, r.User, r.Host, r.Server, r.Nick, r.Flags, trailing}
}

func decodeWhoReply(f *fields) (Reply, error) {
	r := &RplWhoReply{}
	var trailing string
	err := f.scanStrings(&r.Client, &r.Channel, &r.User, &r.Host, &r.Server, &r.Nick, &r.Flags, &trailing)
	if err != nil {
		return nil, err
	}
	hops, realname, found := strings.Cut(trailing, " ")
	if !found {
		realname = ""
	}
	n, perr := parseUintString(hops)
	if perr != nil {
		return nil, f.badField("hops", perr)
	}
	r.Hops = n
	r.Realname = realname
	return r, nil
}

// NamEntry is one member in a NAMES reply: its membership prefixes, highest
// first, and its nickname.
type NamEntry struct {
	Prefixes []MembershipPrefix `json:"prefixes,omitempty"`
	Nick     Nickname           `json:"nick"`
}

func (e NamEntry) String() string {
	var sb strings.Builder
	for _, p := range e.Prefixes {
		sb.WriteByte(byte(p))
	}
	sb.WriteString(string(e.Nick))
	return sb.String()
}

// RplNamReply (353)
type RplNamReply struct {
	Client  string        `json:"client"`
	Status  ChannelStatus `json:"status"`
	Channel Channel       `json:"channel"`
	Members []NamEntry    `json:"members"`
}

func (*RplNamReply) Code() int { return 353 }
func (r *RplNamReply) wireParams() []string {
	members := make([]string, len(r.Members))
	for i, e := range r.Members {
		members[i] = e.String()
	}
	return []string{r.Client, r.Status.String(), string(r.Channel), strings.Join(members, " ")}
}

func decodeNamReply(f *fields) (Reply, error) {
	r := &RplNamReply{}
	if err := f.scanStrings(&r.Client); err != nil {
		return nil, err
	}
	status, err := f.next("status")
	if err != nil {
		return nil, err
	}
	st, verr := ParseChannelStatus(status)
	if verr != nil {
		return nil, f.badField("status", verr)
	}
	r.Status = st
	ch, err := f.channel("channel")
	if err != nil {
		return nil, err
	}
	r.Channel = ch
	names, err := f.next("members")
	if err != nil {
		return nil, err
	}
	for _, tok := range strings.Fields(names) {
		prefixes, nick := SplitMemberships(tok)
		n, verr := ParseNickname(nick)
		if verr != nil {
			return nil, f.badField("members", verr)
		}
		r.Members = append(r.Members, NamEntry{Prefixes: prefixes, Nick: n})
	}
	return r, nil
}

// RplLinks (364)
type RplLinks struct {
	Client string `json:"client"`
	Mask   string `json:"mask"`
	Server string `json:"server"`
	Text   string `json:"text"` // "<hopcount> <server info>"
}

func (*RplLinks) Code() int { return 364 }
func (r *RplLinks) wireParams() []string {
	return []string{r.Client, r.Mask, r.Server, r.Text}
}

// RplEndOfLinks (365)
type RplEndOfLinks struct {
	Client string `json:"client"`
	Mask   string `json:"mask"`
	Text   string `json:"text"`
}

func (*RplEndOfLinks) Code() int              { return 365 }
func (r *RplEndOfLinks) wireParams() []string { return []string{r.Client, r.Mask, r.Text} }

// RplEndOfNames (366)
type RplEndOfNames struct {
	Client  string  `json:"client"`
	Channel Channel `json:"channel"`
	Text    string  `json:"text"`
}

func (*RplEndOfNames) Code() int { return 366 }
func (r *RplEndOfNames) wireParams() []string {
	return []string{r.Client, string(r.Channel), r.Text}
}

// RplBanList (367)
type RplBanList struct {
	Client  string     `json:"client"`
	Channel Channel    `json:"channel"`
	Mask    string     `json:"mask"`
	SetBy   string     `json:"set_by,omitempty"`
	SetAt   *Timestamp `json:"set_at,omitempty"`
}

func (*RplBanList) Code() int { return 367 }
func (r *RplBanList) wireParams() []string {
	params := []string{r.Client, string(r.Channel), r.Mask}
	if r.SetBy != "" {
		params = append(params, r.SetBy)
		if r.SetAt != nil {
			params = append(params, r.SetAt.String())
		}
	}
	return params
}

func decodeBanList(f *fields) (Reply, error) {
	r := &RplBanList{}
	if err := f.scanStrings(&r.Client); err != nil {
		return nil, err
	}
	ch, err := f.channel("channel")
	if err != nil {
		return nil, err
	}
	r.Channel = ch
	if err := f.scanStrings(&r.Mask); err != nil {
		return nil, err
	}
	if setBy, ok := f.opt(); ok {
		r.SetBy = setBy
		if _, ok := f.opt(); ok {
			f.i--
			ts, err := f.timestamp("set_at")
			if err != nil {
				return nil, err
			}
			r.SetAt = &ts
		}
	}
	return r, nil
}

// RplEndOfBanList (368)
type RplEndOfBanList struct {
	Client  string  `json:"client"`
	Channel Channel `json:"channel"`
	Text    string  `json:"text"`
}

func (*RplEndOfBanList) Code() int { return 368 }
func (r *RplEndOfBanList) wireParams() []string {
	return []string{r.Client, string(r.Channel), r.Text}
}

// RplEndOfWhoWas (369)
type RplEndOfWhoWas struct {
	Client string `json:"client"`
	Nick   string `json:"nick"`
	Text   string `json:"text"`
}

func (*RplEndOfWhoWas) Code() int              { return 369 }
func (r *RplEndOfWhoWas) wireParams() []string { return []string{r.Client, r.Nick, r.Text} }

// RplInfo (371)
type RplInfo struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*RplInfo) Code() int              { return 371 }
func (r *RplInfo) wireParams() []string { return []string{r.Client, r.Text} }

// RplMotd (372)
type RplMotd struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*RplMotd) Code() int              { return 372 }
func (r *RplMotd) wireParams() []string { return []string{r.Client, r.Text} }

// RplEndOfInfo (374)
type RplEndOfInfo struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*RplEndOfInfo) Code() int              { return 374 }
func (r *RplEndOfInfo) wireParams() []string { return []string{r.Client, r.Text} }

// RplMotdStart (375)
type RplMotdStart struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*RplMotdStart) Code() int              { return 375 }
func (r *RplMotdStart) wireParams() []string { return []string{r.Client, r.Text} }

// RplEndOfMotd (376)
type RplEndOfMotd struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*RplEndOfMotd) Code() int              { return 376 }
func (r *RplEndOfMotd) wireParams() []string { return []string{r.Client, r.Text} }

// RplWhoIsHost (378)
type RplWhoIsHost struct {
	Client string `json:"client"`
	Nick   string `json:"nick"`
	Text   string `json:"text"`
}

func (*RplWhoIsHost) Code() int              { return 378 }
func (r *RplWhoIsHost) wireParams() []string { return []string{r.Client, r.Nick, r.Text} }

// RplWhoIsModes (379)
type RplWhoIsModes struct {
	Client string `json:"client"`
	Nick   string `json:"nick"`
	Text   string `json:"text"`
}

func (*RplWhoIsModes) Code() int              { return 379 }
func (r *RplWhoIsModes) wireParams() []string { return []string{r.Client, r.Nick, r.Text} }

// RplYoureOper (381)
type RplYoureOper struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*RplYoureOper) Code() int              { return 381 }
func (r *RplYoureOper) wireParams() []string { return []string{r.Client, r.Text} }

// RplRehashing (382)
type RplRehashing struct {
	Client string `json:"client"`
	File   string `json:"file"`
	Text   string `json:"text"`
}

func (*RplRehashing) Code() int              { return 382 }
func (r *RplRehashing) wireParams() []string { return []string{r.Client, r.File, r.Text} }

// RplTime (391)
type RplTime struct {
	Client string `json:"client"`
	Server string `json:"server"`
	Text   string `json:"text"`
}

func (*RplTime) Code() int              { return 391 }
func (r *RplTime) wireParams() []string { return []string{r.Client, r.Server, r.Text} }

// ErrUnknownError (400)
type ErrUnknownError struct {
	Client string   `json:"client"`
	Params []string `json:"params"`
}

func (*ErrUnknownError) Code() int { return 400 }
func (r *ErrUnknownError) wireParams() []string {
	return append([]string{r.Client}, r.Params...)
}

func decodeUnknownError(f *fields) (Reply, error) {
	r := &ErrUnknownError{}
	if err := f.scanStrings(&r.Client); err != nil {
		return nil, err
	}
	r.Params = f.rest()
	if len(r.Params) == 0 {
		return nil, &ParseError{Kind: ErrBadParamCount, Command: f.cmd}
	}
	return r, nil
}

// ErrNoSuchNick (401)
type ErrNoSuchNick struct {
	Client string `json:"client"`
	Nick   string `json:"nick"`
	Text   string `json:"text"`
}

func (*ErrNoSuchNick) Code() int              { return 401 }
func (r *ErrNoSuchNick) wireParams() []string { return []string{r.Client, r.Nick, r.Text} }

// ErrNoSuchServer (402)
type ErrNoSuchServer struct {
	Client string `json:"client"`
	Server string `json:"server"`
	Text   string `json:"text"`
}

func (*ErrNoSuchServer) Code() int              { return 402 }
func (r *ErrNoSuchServer) wireParams() []string { return []string{r.Client, r.Server, r.Text} }

// ErrNoSuchChannel (403). The channel field stays a raw string: the server
// echoes whatever name the client asked for, valid or not.
type ErrNoSuchChannel struct {
	Client  string `json:"client"`
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

func (*ErrNoSuchChannel) Code() int              { return 403 }
func (r *ErrNoSuchChannel) wireParams() []string { return []string{r.Client, r.Channel, r.Text} }

// ErrCannotSendToChan (404)
type ErrCannotSendToChan struct {
	Client  string `json:"client"`
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

func (*ErrCannotSendToChan) Code() int { return 404 }
func (r *ErrCannotSendToChan) wireParams() []string {
	return []string{r.Client, r.Channel, r.Text}
}

// ErrTooManyChannels (405)
type ErrTooManyChannels struct {
	Client  string `json:"client"`
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

func (*ErrTooManyChannels) Code() int { return 405 }
func (r *ErrTooManyChannels) wireParams() []string {
	return []string{r.Client, r.Channel, r.Text}
}

// ErrWasNoSuchNick (406)
type ErrWasNoSuchNick struct {
	Client string `json:"client"`
	Nick   string `json:"nick"`
	Text   string `json:"text"`
}

func (*ErrWasNoSuchNick) Code() int              { return 406 }
func (r *ErrWasNoSuchNick) wireParams() []string { return []string{r.Client, r.Nick, r.Text} }

// ErrNoOrigin (409)
type ErrNoOrigin struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*ErrNoOrigin) Code() int              { return 409 }
func (r *ErrNoOrigin) wireParams() []string { return []string{r.Client, r.Text} }

// ErrInvalidCapCmd (410)
type ErrInvalidCapCmd struct {
	Client string `json:"client"`
	Subcmd string `json:"subcmd"`
	Text   string `json:"text"`
}

func (*ErrInvalidCapCmd) Code() int              { return 410 }
func (r *ErrInvalidCapCmd) wireParams() []string { return []string{r.Client, r.Subcmd, r.Text} }

// ErrNoRecipient (411)
type ErrNoRecipient struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*ErrNoRecipient) Code() int              { return 411 }
func (r *ErrNoRecipient) wireParams() []string { return []string{r.Client, r.Text} }

// ErrNoTextToSend (412)
type ErrNoTextToSend struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*ErrNoTextToSend) Code() int              { return 412 }
func (r *ErrNoTextToSend) wireParams() []string { return []string{r.Client, r.Text} }

// ErrInputTooLong (417)
type ErrInputTooLong struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*ErrInputTooLong) Code() int              { return 417 }
func (r *ErrInputTooLong) wireParams() []string { return []string{r.Client, r.Text} }

// ErrUnknownCommandRpl (421)
type ErrUnknownCommandRpl struct {
	Client  string `json:"client"`
	Command string `json:"command"`
	Text    string `json:"text"`
}

func (*ErrUnknownCommandRpl) Code() int { return 421 }
func (r *ErrUnknownCommandRpl) wireParams() []string {
	return []string{r.Client, r.Command, r.Text}
}

// ErrNoMotd (422)
type ErrNoMotd struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*ErrNoMotd) Code() int              { return 422 }
func (r *ErrNoMotd) wireParams() []string { return []string{r.Client, r.Text} }

// ErrNoNicknameGiven (431)
type ErrNoNicknameGiven struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*ErrNoNicknameGiven) Code() int              { return 431 }
func (r *ErrNoNicknameGiven) wireParams() []string { return []string{r.Client, r.Text} }

// ErrErroneousNickname (432)
type ErrErroneousNickname struct {
	Client string `json:"client"`
	Nick   string `json:"nick"`
	Text   string `json:"text"`
}

func (*ErrErroneousNickname) Code() int { return 432 }
func (r *ErrErroneousNickname) wireParams() []string {
	return []string{r.Client, r.Nick, r.Text}
}

// ErrNicknameInUse (433)
type ErrNicknameInUse struct {
	Client string `json:"client"`
	Nick   string `json:"nick"`
	Text   string `json:"text"`
}

func (*ErrNicknameInUse) Code() int              { return 433 }
func (r *ErrNicknameInUse) wireParams() []string { return []string{r.Client, r.Nick, r.Text} }

// ErrNickCollision (436)
type ErrNickCollision struct {
	Client string `json:"client"`
	Nick   string `json:"nick"`
	Text   string `json:"text"`
}

func (*ErrNickCollision) Code() int              { return 436 }
func (r *ErrNickCollision) wireParams() []string { return []string{r.Client, r.Nick, r.Text} }

// ErrUserNotInChannel (441)
type ErrUserNotInChannel struct {
	Client  string  `json:"client"`
	Nick    string  `json:"nick"`
	Channel Channel `json:"channel"`
	Text    string  `json:"text"`
}

func (*ErrUserNotInChannel) Code() int { return 441 }
func (r *ErrUserNotInChannel) wireParams() []string {
	return []string{r.Client, r.Nick, string(r.Channel), r.Text}
}

func decodeUserNotInChannel(f *fields) (Reply, error) {
	r := &ErrUserNotInChannel{}
	if err := f.scanStrings(&r.Client, &r.Nick); err != nil {
		return nil, err
	}
	ch, err := f.channel("channel")
	if err != nil {
		return nil, err
	}
	r.Channel = ch
	return r, f.scanStrings(&r.Text)
}

// ErrNotOnChannel (442)
type ErrNotOnChannel struct {
	Client  string  `json:"client"`
	Channel Channel `json:"channel"`
	Text    string  `json:"text"`
}

func (*ErrNotOnChannel) Code() int { return 442 }
func (r *ErrNotOnChannel) wireParams() []string {
	return []string{r.Client, string(r.Channel), r.Text}
}

// ErrUserOnChannel (443)
type ErrUserOnChannel struct {
	Client  string  `json:"client"`
	Nick    string  `json:"nick"`
	Channel Channel `json:"channel"`
	Text    string  `json:"text"`
}

func (*ErrUserOnChannel) Code() int { return 443 }
func (r *ErrUserOnChannel) wireParams() []string {
	return []string{r.Client, r.Nick, string(r.Channel), r.Text}
}

func decodeUserOnChannel(f *fields) (Reply, error) {
	r := &ErrUserOnChannel{}
	if err := f.scanStrings(&r.Client, &r.Nick); err != nil {
		return nil, err
	}
	ch, err := f.channel("channel")
	if err != nil {
		return nil, err
	}
	r.Channel = ch
	return r, f.scanStrings(&r.Text)
}

// ErrNotRegistered (451)
type ErrNotRegistered struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*ErrNotRegistered) Code() int              { return 451 }
func (r *ErrNotRegistered) wireParams() []string { return []string{r.Client, r.Text} }

// ErrNeedMoreParams (461)
type ErrNeedMoreParams struct {
	Client  string `json:"client"`
	Command string `json:"command"`
	Text    string `json:"text"`
}

func (*ErrNeedMoreParams) Code() int { return 461 }
func (r *ErrNeedMoreParams) wireParams() []string {
	return []string{r.Client, r.Command, r.Text}
}

// ErrAlreadyRegistered (462)
type ErrAlreadyRegistered struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*ErrAlreadyRegistered) Code() int              { return 462 }
func (r *ErrAlreadyRegistered) wireParams() []string { return []string{r.Client, r.Text} }

// ErrPasswdMismatch (464)
type ErrPasswdMismatch struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*ErrPasswdMismatch) Code() int              { return 464 }
func (r *ErrPasswdMismatch) wireParams() []string { return []string{r.Client, r.Text} }

// ErrYoureBannedCreep (465)
type ErrYoureBannedCreep struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*ErrYoureBannedCreep) Code() int              { return 465 }
func (r *ErrYoureBannedCreep) wireParams() []string { return []string{r.Client, r.Text} }

// ErrChannelIsFull (471)
type ErrChannelIsFull struct {
	Client  string  `json:"client"`
	Channel Channel `json:"channel"`
	Text    string  `json:"text"`
}

func (*ErrChannelIsFull) Code() int { return 471 }
func (r *ErrChannelIsFull) wireParams() []string {
	return []string{r.Client, string(r.Channel), r.Text}
}

// ErrUnknownMode (472)
type ErrUnknownMode struct {
	Client string `json:"client"`
	Mode   string `json:"mode"`
	Text   string `json:"text"`
}

func (*ErrUnknownMode) Code() int              { return 472 }
func (r *ErrUnknownMode) wireParams() []string { return []string{r.Client, r.Mode, r.Text} }

// ErrInviteOnlyChan (473)
type ErrInviteOnlyChan struct {
	Client  string  `json:"client"`
	Channel Channel `json:"channel"`
	Text    string  `json:"text"`
}

func (*ErrInviteOnlyChan) Code() int { return 473 }
func (r *ErrInviteOnlyChan) wireParams() []string {
	return []string{r.Client, string(r.Channel), r.Text}
}

// ErrBannedFromChan (474)
type ErrBannedFromChan struct {
	Client  string  `json:"client"`
	Channel Channel `json:"channel"`
	Text    string  `json:"text"`
}

func (*ErrBannedFromChan) Code() int { return 474 }
func (r *ErrBannedFromChan) wireParams() []string {
	return []string{r.Client, string(r.Channel), r.Text}
}

// ErrBadChannelKey (475)
type ErrBadChannelKey struct {
	Client  string  `json:"client"`
	Channel Channel `json:"channel"`
	Text    string  `json:"text"`
}

func (*ErrBadChannelKey) Code() int { return 475 }
func (r *ErrBadChannelKey) wireParams() []string {
	return []string{r.Client, string(r.Channel), r.Text}
}

// ErrBadChanMask (476)
type ErrBadChanMask struct {
	Client  string `json:"client"`
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

func (*ErrBadChanMask) Code() int              { return 476 }
func (r *ErrBadChanMask) wireParams() []string { return []string{r.Client, r.Channel, r.Text} }

// ErrNoPrivileges (481)
type ErrNoPrivileges struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*ErrNoPrivileges) Code() int              { return 481 }
func (r *ErrNoPrivileges) wireParams() []string { return []string{r.Client, r.Text} }

// ErrChanOPrivsNeeded (482)
type ErrChanOPrivsNeeded struct {
	Client  string  `json:"client"`
	Channel Channel `json:"channel"`
	Text    string  `json:"text"`
}

func (*ErrChanOPrivsNeeded) Code() int { return 482 }
func (r *ErrChanOPrivsNeeded) wireParams() []string {
	return []string{r.Client, string(r.Channel), r.Text}
}

// ErrCantKillServer (483)
type ErrCantKillServer struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*ErrCantKillServer) Code() int              { return 483 }
func (r *ErrCantKillServer) wireParams() []string { return []string{r.Client, r.Text} }

// ErrNoOperHost (491)
type ErrNoOperHost struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*ErrNoOperHost) Code() int              { return 491 }
func (r *ErrNoOperHost) wireParams() []string { return []string{r.Client, r.Text} }

// ErrUmodeUnknownFlag (501)
type ErrUmodeUnknownFlag struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*ErrUmodeUnknownFlag) Code() int              { return 501 }
func (r *ErrUmodeUnknownFlag) wireParams() []string { return []string{r.Client, r.Text} }

// ErrUsersDontMatch (502)
type ErrUsersDontMatch struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*ErrUsersDontMatch) Code() int              { return 502 }
func (r *ErrUsersDontMatch) wireParams() []string { return []string{r.Client, r.Text} }

// ErrHelpNotFound (524)
type ErrHelpNotFound struct {
	Client  string `json:"client"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

func (*ErrHelpNotFound) Code() int              { return 524 }
func (r *ErrHelpNotFound) wireParams() []string { return []string{r.Client, r.Subject, r.Text} }

// ErrInvalidKey (525)
type ErrInvalidKey struct {
	Client  string  `json:"client"`
	Channel Channel `json:"channel"`
	Text    string  `json:"text"`
}

func (*ErrInvalidKey) Code() int { return 525 }
func (r *ErrInvalidKey) wireParams() []string {
	return []string{r.Client, string(r.Channel), r.Text}
}

// RplWhoIsSecure (671)
type RplWhoIsSecure struct {
	Client string `json:"client"`
	Nick   string `json:"nick"`
	Text   string `json:"text"`
}

func (*RplWhoIsSecure) Code() int              { return 671 }
func (r *RplWhoIsSecure) wireParams() []string { return []string{r.Client, r.Nick, r.Text} }

// ErrInvalidModeParam (696)
type ErrInvalidModeParam struct {
	Client string   `json:"client"`
	Params []string `json:"params"`
}

func (*ErrInvalidModeParam) Code() int { return 696 }
func (r *ErrInvalidModeParam) wireParams() []string {
	return append([]string{r.Client}, r.Params...)
}

func decodeInvalidModeParam(f *fields) (Reply, error) {
	r := &ErrInvalidModeParam{}
	if err := f.scanStrings(&r.Client); err != nil {
		return nil, err
	}
	r.Params = f.rest()
	if len(r.Params) == 0 {
		return nil, &ParseError{Kind: ErrBadParamCount, Command: f.cmd}
	}
	return r, nil
}

// RplHelpStart (704)
type RplHelpStart struct {
	Client  string `json:"client"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

func (*RplHelpStart) Code() int              { return 704 }
func (r *RplHelpStart) wireParams() []string { return []string{r.Client, r.Subject, r.Text} }

// RplHelpTxt (705)
type RplHelpTxt struct {
	Client  string `json:"client"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

func (*RplHelpTxt) Code() int              { return 705 }
func (r *RplHelpTxt) wireParams() []string { return []string{r.Client, r.Subject, r.Text} }

// RplEndOfHelp (706)
type RplEndOfHelp struct {
	Client  string `json:"client"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

func (*RplEndOfHelp) Code() int              { return 706 }
func (r *RplEndOfHelp) wireParams() []string { return []string{r.Client, r.Subject, r.Text} }

// ErrNoPrivs (723)
type ErrNoPrivs struct {
	Client string `json:"client"`
	Priv   string `json:"priv"`
	Text   string `json:"text"`
}

func (*ErrNoPrivs) Code() int              { return 723 }
func (r *ErrNoPrivs) wireParams() []string { return []string{r.Client, r.Priv, r.Text} }

// RplLoggedIn (900)
type RplLoggedIn struct {
	Client  string `json:"client"`
	Mask    string `json:"mask"`
	Account string `json:"account"`
	Text    string `json:"text"`
}

func (*RplLoggedIn) Code() int { return 900 }
func (r *RplLoggedIn) wireParams() []string {
	return []string{r.Client, r.Mask, r.Account, r.Text}
}

// RplLoggedOut (901)
type RplLoggedOut struct {
	Client string `json:"client"`
	Mask   string `json:"mask"`
	Text   string `json:"text"`
}

func (*RplLoggedOut) Code() int              { return 901 }
func (r *RplLoggedOut) wireParams() []string { return []string{r.Client, r.Mask, r.Text} }

// ErrNickLocked (902)
type ErrNickLocked struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*ErrNickLocked) Code() int              { return 902 }
func (r *ErrNickLocked) wireParams() []string { return []string{r.Client, r.Text} }

// RplSaslSuccess (903)
type RplSaslSuccess struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*RplSaslSuccess) Code() int              { return 903 }
func (r *RplSaslSuccess) wireParams() []string { return []string{r.Client, r.Text} }

// ErrSaslFail (904)
type ErrSaslFail struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*ErrSaslFail) Code() int              { return 904 }
func (r *ErrSaslFail) wireParams() []string { return []string{r.Client, r.Text} }

// ErrSaslTooLong (905)
type ErrSaslTooLong struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*ErrSaslTooLong) Code() int              { return 905 }
func (r *ErrSaslTooLong) wireParams() []string { return []string{r.Client, r.Text} }

// ErrSaslAborted (906)
type ErrSaslAborted struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*ErrSaslAborted) Code() int              { return 906 }
func (r *ErrSaslAborted) wireParams() []string { return []string{r.Client, r.Text} }

// ErrSaslAlready (907)
type ErrSaslAlready struct {
	Client string `json:"client"`
	Text   string `json:"text"`
}

func (*ErrSaslAlready) Code() int              { return 907 }
func (r *ErrSaslAlready) wireParams() []string { return []string{r.Client, r.Text} }

// RplSaslMechs (908)
type RplSaslMechs struct {
	Client string `json:"client"`
	Mechs  string `json:"mechs"`
	Text   string `json:"text"`
}

func (*RplSaslMechs) Code() int              { return 908 }
func (r *RplSaslMechs) wireParams() []string { return []string{r.Client, r.Mechs, r.Text} }

// decodeCT decodes the common "client :text" shape.
func decodeCT(mk func(client, text string) Reply) replyDecoder {
	return func(f *fields) (Reply, error) {
		var client, text string
		if err := f.scanStrings(&client, &text); err != nil {
			return nil, err
		}
		return mk(client, text), nil
	}
}

// decodeCNT decodes the common "client <name> :text" shape.
func decodeCNT(mk func(client, name, text string) Reply) replyDecoder {
	return func(f *fields) (Reply, error) {
		var client, name, text string
		if err := f.scanStrings(&client, &name, &text); err != nil {
			return nil, err
		}
		return mk(client, name, text), nil
	}
}

// decodeCChT decodes the common "client <channel> :text" shape.
func decodeCChT(mk func(client string, ch Channel, text string) Reply) replyDecoder {
	return func(f *fields) (Reply, error) {
		var client string
		if err := f.scanStrings(&client); err != nil {
			return nil, err
		}
		ch, err := f.channel("channel")
		if err != nil {
			return nil, err
		}
		var text string
		if err := f.scanStrings(&text); err != nil {
			return nil, err
		}
		return mk(client, ch, text), nil
	}
}

// decodeCUint decodes the common "client <count> :text" shape.
func decodeCUint(mk func(client string, n uint64, text string) Reply) replyDecoder {
	return func(f *fields) (Reply, error) {
		var client string
		if err := f.scanStrings(&client); err != nil {
			return nil, err
		}
		n, err := f.uint("count")
		if err != nil {
			return nil, err
		}
		var text string
		if err := f.scanStrings(&text); err != nil {
			return nil, err
		}
		return mk(client, n, text), nil
	}
}

var replyDecoders = map[int]replyDecoder{
	1:   decodeCT(func(c, t string) Reply { return &RplWelcome{Client: c, Text: t} }),
	2:   decodeCT(func(c, t string) Reply { return &RplYourHost{Client: c, Text: t} }),
	3:   decodeCT(func(c, t string) Reply { return &RplCreated{Client: c, Text: t} }),
	4:   decodeMyInfo,
	5:   decodeISupport,
	10:  decodeBounce,
	212: decodeStatsCommands,
	219: decodeCNT(func(c, q, t string) Reply { return &RplEndOfStats{Client: c, Query: q, Text: t} }),
	221: decodeUModeIs,
	242: decodeCT(func(c, t string) Reply { return &RplStatsUptime{Client: c, Text: t} }),
	250: decodeCT(func(c, t string) Reply { return &RplStatsConn{Client: c, Text: t} }),
	251: decodeCT(func(c, t string) Reply { return &RplLuserClient{Client: c, Text: t} }),
	252: decodeCUint(func(c string, n uint64, t string) Reply { return &RplLuserOp{Client: c, Ops: n, Text: t} }),
	253: decodeCUint(func(c string, n uint64, t string) Reply { return &RplLuserUnknown{Client: c, Connections: n, Text: t} }),
	254: decodeCUint(func(c string, n uint64, t string) Reply { return &RplLuserChannels{Client: c, Channels: n, Text: t} }),
	255: decodeCT(func(c, t string) Reply { return &RplLuserMe{Client: c, Text: t} }),
	256: decodeAdminMe,
	257: decodeCT(func(c, t string) Reply { return &RplAdminLoc1{Client: c, Text: t} }),
	258: decodeCT(func(c, t string) Reply { return &RplAdminLoc2{Client: c, Text: t} }),
	259: decodeCT(func(c, t string) Reply { return &RplAdminEmail{Client: c, Text: t} }),
	263: decodeCNT(func(c, cmd, t string) Reply { return &RplTryAgain{Client: c, Command: cmd, Text: t} }),
	265: decodeUserCounts(func() (*uint64, *uint64, *string, *string, Reply) {
		r := &RplLocalUsers{}
		return &r.Users, &r.Max, &r.Client, &r.Text, r
	}),
	266: decodeUserCounts(func() (*uint64, *uint64, *string, *string, Reply) {
		r := &RplGlobalUsers{}
		return &r.Users, &r.Max, &r.Client, &r.Text, r
	}),
	276: decodeCNT(func(c, n, t string) Reply { return &RplWhoIsCertFP{Client: c, Nick: n, Text: t} }),
	300: func(f *fields) (Reply, error) { return &RplNone{Params: f.rest()}, nil },
	301: decodeCNT(func(c, n, t string) Reply { return &RplAway{Client: c, Nick: n, Text: t} }),
	302: decodeUserHost,
	305: decodeCT(func(c, t string) Reply { return &RplUnAway{Client: c, Text: t} }),
	306: decodeCT(func(c, t string) Reply { return &RplNowAway{Client: c, Text: t} }),
	307: decodeCNT(func(c, n, t string) Reply { return &RplWhoIsRegNick{Client: c, Nick: n, Text: t} }),
	311: decodeWhoIsUser,
	312: func(f *fields) (Reply, error) {
		r := &RplWhoIsServer{}
		return r, f.scanStrings(&r.Client, &r.Nick, &r.Server, &r.Info)
	},
	313: decodeCNT(func(c, n, t string) Reply { return &RplWhoIsOperator{Client: c, Nick: n, Text: t} }),
	314: decodeWhoWasUser,
	315: decodeCNT(func(c, m, t string) Reply { return &RplEndOfWho{Client: c, Mask: m, Text: t} }),
	317: decodeWhoIsIdle,
	318: decodeCNT(func(c, n, t string) Reply { return &RplEndOfWhoIs{Client: c, Nick: n, Text: t} }),
	319: decodeWhoIsChannels,
	320: decodeCNT(func(c, n, t string) Reply { return &RplWhoIsSpecial{Client: c, Nick: n, Text: t} }),
	321: decodeListStart,
	322: decodeList322,
	323: decodeCT(func(c, t string) Reply { return &RplListEnd{Client: c, Text: t} }),
	324: decodeChannelModeIs,
	329: decodeCreationTime,
	330: func(f *fields) (Reply, error) {
		r := &RplWhoIsAccount{}
		return r, f.scanStrings(&r.Client, &r.Nick, &r.Account, &r.Text)
	},
	331: decodeCChT(func(c string, ch Channel, t string) Reply { return &RplNoTopic{Client: c, Channel: ch, Text: t} }),
	332: decodeCChT(func(c string, ch Channel, t string) Reply { return &RplTopic{Client: c, Channel: ch, Topic: t} }),
	333: decodeTopicWhoTime,
	336: decodeInviteList,
	337: decodeCT(func(c, t string) Reply { return &RplEndOfInviteList{Client: c, Text: t} }),
	338: decodeWhoIsActually,
	341: decodeInviting,
	346: decodeChannelMask(func(c string, ch Channel, m string) Reply {
		return &RplInvExList{Client: c, Channel: ch, Mask: m}
	}),
	347: decodeCChT(func(c string, ch Channel, t string) Reply {
		return &RplEndOfInvExList{Client: c, Channel: ch, Text: t}
	}),
	348: decodeChannelMask(func(c string, ch Channel, m string) Reply {
		return &RplExceptList{Client: c, Channel: ch, Mask: m}
	}),
	349: decodeCChT(func(c string, ch Channel, t string) Reply {
		return &RplEndOfExceptList{Client: c, Channel: ch, Text: t}
	}),
	351: decodeVersion,
	352: decodeWhoReply,
	353: decodeNamReply,
	364: func(f *fields) (Reply, error) {
		r := &RplLinks{}
		return r, f.scanStrings(&r.Client, &r.Mask, &r.Server, &r.Text)
	},
	365: decodeCNT(func(c, m, t string) Reply { return &RplEndOfLinks{Client: c, Mask: m, Text: t} }),
	366: decodeCChT(func(c string, ch Channel, t string) Reply {
		return &RplEndOfNames{Client: c, Channel: ch, Text: t}
	}),
	367: decodeBanList,
	368: decodeCChT(func(c string, ch Channel, t string) Reply {
		return &RplEndOfBanList{Client: c, Channel: ch, Text: t}
	}),
	369: decodeCNT(func(c, n, t string) Reply { return &RplEndOfWhoWas{Client: c, Nick: n, Text: t} }),
	371: decodeCT(func(c, t string) Reply { return &RplInfo{Client: c, Text: t} }),
	372: decodeCT(func(c, t string) Reply { return &RplMotd{Client: c, Text: t} }),
	374: decodeCT(func(c, t string) Reply { return &RplEndOfInfo{Client: c, Text: t} }),
	375: decodeCT(func(c, t string) Reply { return &RplMotdStart{Client: c, Text: t} }),
	376: decodeCT(func(c, t string) Reply { return &RplEndOfMotd{Client: c, Text: t} }),
	378: decodeCNT(func(c, n, t string) Reply { return &RplWhoIsHost{Client: c, Nick: n, Text: t} }),
	379: decodeCNT(func(c, n, t string) Reply { return &RplWhoIsModes{Client: c, Nick: n, Text: t} }),
	381: decodeCT(func(c, t string) Reply { return &RplYoureOper{Client: c, Text: t} }),
	382: decodeCNT(func(c, fl, t string) Reply { return &RplRehashing{Client: c, File: fl, Text: t} }),
	391: decodeCNT(func(c, s, t string) Reply { return &RplTime{Client: c, Server: s, Text: t} }),
	400: decodeUnknownError,
	401: decodeCNT(func(c, n, t string) Reply { return &ErrNoSuchNick{Client: c, Nick: n, Text: t} }),
	402: decodeCNT(func(c, s, t string) Reply { return &ErrNoSuchServer{Client: c, Server: s, Text: t} }),
	403: decodeCNT(func(c, ch, t string) Reply { return &ErrNoSuchChannel{Client: c, Channel: ch, Text: t} }),
	404: decodeCNT(func(c, ch, t string) Reply { return &ErrCannotSendToChan{Client: c, Channel: ch, Text: t} }),
	405: decodeCNT(func(c, ch, t string) Reply { return &ErrTooManyChannels{Client: c, Channel: ch, Text: t} }),
	406: decodeCNT(func(c, n, t string) Reply { return &ErrWasNoSuchNick{Client: c, Nick: n, Text: t} }),
	409: decodeCT(func(c, t string) Reply { return &ErrNoOrigin{Client: c, Text: t} }),
	410: decodeCNT(func(c, s, t string) Reply { return &ErrInvalidCapCmd{Client: c, Subcmd: s, Text: t} }),
	411: decodeCT(func(c, t string) Reply { return &ErrNoRecipient{Client: c, Text: t} }),
	412: decodeCT(func(c, t string) Reply { return &ErrNoTextToSend{Client: c, Text: t} }),
	417: decodeCT(func(c, t string) Reply { return &ErrInputTooLong{Client: c, Text: t} }),
	421: decodeCNT(func(c, cmd, t string) Reply { return &ErrUnknownCommandRpl{Client: c, Command: cmd, Text: t} }),
	422: decodeCT(func(c, t string) Reply { return &ErrNoMotd{Client: c, Text: t} }),
	431: decodeCT(func(c, t string) Reply { return &ErrNoNicknameGiven{Client: c, Text: t} }),
	432: decodeCNT(func(c, n, t string) Reply { return &ErrErroneousNickname{Client: c, Nick: n, Text: t} }),
	433: decodeCNT(func(c, n, t string) Reply { return &ErrNicknameInUse{Client: c, Nick: n, Text: t} }),
	436: decodeCNT(func(c, n, t string) Reply { return &ErrNickCollision{Client: c, Nick: n, Text: t} }),
	441: decodeUserNotInChannel,
	442: decodeCChT(func(c string, ch Channel, t string) Reply {
		return &ErrNotOnChannel{Client: c, Channel: ch, Text: t}
	}),
	443: decodeUserOnChannel,
	451: decodeCT(func(c, t string) Reply { return &ErrNotRegistered{Client: c, Text: t} }),
	461: decodeCNT(func(c, cmd, t string) Reply { return &ErrNeedMoreParams{Client: c, Command: cmd, Text: t} }),
	462: decodeCT(func(c, t string) Reply { return &ErrAlreadyRegistered{Client: c, Text: t} }),
	464: decodeCT(func(c, t string) Reply { return &ErrPasswdMismatch{Client: c, Text: t} }),
	465: decodeCT(func(c, t string) Reply { return &ErrYoureBannedCreep{Client: c, Text: t} }),
	471: decodeCChT(func(c string, ch Channel, t string) Reply {
		return &ErrChannelIsFull{Client: c, Channel: ch, Text: t}
	}),
	472: decodeCNT(func(c, m, t string) Reply { return &ErrUnknownMode{Client: c, Mode: m, Text: t} }),
	473: decodeCChT(func(c string, ch Channel, t string) Reply {
		return &ErrInviteOnlyChan{Client: c, Channel: ch, Text: t}
	}),
	474: decodeCChT(func(c string, ch Channel, t string) Reply {
		return &ErrBannedFromChan{Client: c, Channel: ch, Text: t}
	}),
	475: decodeCChT(func(c string, ch Channel, t string) Reply {
		return &ErrBadChannelKey{Client: c, Channel: ch, Text: t}
	}),
	476: decodeCNT(func(c, ch, t string) Reply { return &ErrBadChanMask{Client: c, Channel: ch, Text: t} }),
	481: decodeCT(func(c, t string) Reply { return &ErrNoPrivileges{Client: c, Text: t} }),
	482: decodeCChT(func(c string, ch Channel, t string) Reply {
		return &ErrChanOPrivsNeeded{Client: c, Channel: ch, Text: t}
	}),
	483: decodeCT(func(c, t string) Reply { return &ErrCantKillServer{Client: c, Text: t} }),
	491: decodeCT(func(c, t string) Reply { return &ErrNoOperHost{Client: c, Text: t} }),
	501: decodeCT(func(c, t string) Reply { return &ErrUmodeUnknownFlag{Client: c, Text: t} }),
	502: decodeCT(func(c, t string) Reply { return &ErrUsersDontMatch{Client: c, Text: t} }),
	524: decodeCNT(func(c, s, t string) Reply { return &ErrHelpNotFound{Client: c, Subject: s, Text: t} }),
	525: decodeCChT(func(c string, ch Channel, t string) Reply {
		return &ErrInvalidKey{Client: c, Channel: ch, Text: t}
	}),
	671: decodeCNT(func(c, n, t string) Reply { return &RplWhoIsSecure{Client: c, Nick: n, Text: t} }),
	696: decodeInvalidModeParam,
	704: decodeCNT(func(c, s, t string) Reply { return &RplHelpStart{Client: c, Subject: s, Text: t} }),
	705: decodeCNT(func(c, s, t string) Reply { return &RplHelpTxt{Client: c, Subject: s, Text: t} }),
	706: decodeCNT(func(c, s, t string) Reply { return &RplEndOfHelp{Client: c, Subject: s, Text: t} }),
	723: decodeCNT(func(c, p, t string) Reply { return &ErrNoPrivs{Client: c, Priv: p, Text: t} }),
	900: func(f *fields) (Reply, error) {
		r := &RplLoggedIn{}
		return r, f.scanStrings(&r.Client, &r.Mask, &r.Account, &r.Text)
	},
	901: func(f *fields) (Reply, error) {
		r := &RplLoggedOut{}
		return r, f.scanStrings(&r.Client, &r.Mask, &r.Text)
	},
	902: decodeCT(func(c, t string) Reply { return &ErrNickLocked{Client: c, Text: t} }),
	903: decodeCT(func(c, t string) Reply { return &RplSaslSuccess{Client: c, Text: t} }),
	904: decodeCT(func(c, t string) Reply { return &ErrSaslFail{Client: c, Text: t} }),
	905: decodeCT(func(c, t string) Reply { return &ErrSaslTooLong{Client: c, Text: t} }),
	906: decodeCT(func(c, t string) Reply { return &ErrSaslAborted{Client: c, Text: t} }),
	907: decodeCT(func(c, t string) Reply { return &ErrSaslAlready{Client: c, Text: t} }),
	908: decodeCNT(func(c, m, t string) Reply { return &RplSaslMechs{Client: c, Mechs: m, Text: t} }),
}

// IsErrorReply reports whether the reply is in the error range (400-599) or
// a SASL/registration error numeric.
func IsErrorReply(r Reply) bool {
	code := r.Code()
	if code >= 400 && code < 600 {
		return true
	}
	switch code {
	case 902, 904, 905, 906, 907:
		return true
	}
	return false
}
