package ofx

// One document template parameterized by statement family. The signon
// envelope, transaction list, escaping, and date handling are shared; only
// the family wrapper elements differ.
const documentTemplate = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:UTF-8
CHARSET:UTF-8
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>{{.Now}}
<LANGUAGE>ENG
<FI>
<ORG>{{.Org}}
<FID>0
</FI>
</SONRS>
</SIGNONMSGSRSV1>
{{if .CreditCard -}}
<CREDITCARDMSGSRSV1>
<CCSTMTTRNRS>
<TRNUID>{{.TrnUID}}
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<CCSTMTRS>
<CURDEF>{{.Currency}}
<CCACCTFROM>
<ACCTID>{{.AccountID}}
</CCACCTFROM>
<BANKTRANLIST>
<DTSTART>{{.DtStart}}
<DTEND>{{.DtEnd}}
{{else if .Investment -}}
<INVSTMTMSGSRSV1>
<INVSTMTTRNRS>
<TRNUID>{{.TrnUID}}
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<INVSTMTRS>
<DTASOF>{{.Now}}
<CURDEF>{{.Currency}}
<INVACCTFROM>
<BROKERID>{{.Org}}
<ACCTID>{{.AccountID}}
</INVACCTFROM>
<INVTRANLIST>
<DTSTART>{{.DtStart}}
<DTEND>{{.DtEnd}}
{{else -}}
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>{{.TrnUID}}
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>{{.Currency}}
<BANKACCTFROM>
<BANKID>{{.Org}}
<ACCTID>{{.AccountID}}
<ACCTTYPE>{{.AcctType}}
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>{{.DtStart}}
<DTEND>{{.DtEnd}}
{{end -}}
{{range .Txns -}}
{{if and $.Investment .Invest -}}
<INVBANKTRAN>
<STMTTRN>
<TRNTYPE>{{.Kind}}
<DTPOSTED>{{.Posted}}
<TRNAMT>{{.Amount}}
<FITID>{{.FitID}}
{{if .Name}}<NAME>{{.Name}}
{{end -}}
{{if .Memo}}<MEMO>{{.Memo}}
{{end -}}
</STMTTRN>
</INVBANKTRAN>
{{else -}}
<STMTTRN>
<TRNTYPE>{{.Kind}}
<DTPOSTED>{{.Posted}}
<TRNAMT>{{.Amount}}
<FITID>{{.FitID}}
{{if .Name}}<NAME>{{.Name}}
{{end -}}
{{if .Memo}}<MEMO>{{.Memo}}
{{end -}}
</STMTTRN>
{{end -}}
{{end -}}
{{if .CreditCard -}}
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>0
<DTASOF>{{.Now}}
</LEDGERBAL>
</CCSTMTRS>
</CCSTMTTRNRS>
</CREDITCARDMSGSRSV1>
</OFX>
{{else if .Investment -}}
</INVTRANLIST>
<INVBAL>
<AVAILCASH>0
<MARGINBALANCE>0
<SHORTBALANCE>0
</INVBAL>
</INVSTMTRS>
</INVSTMTTRNRS>
</INVSTMTMSGSRSV1>
</OFX>
{{else -}}
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>0
<DTASOF>{{.Now}}
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>
{{end}}`
