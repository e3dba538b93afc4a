package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type IMailService interface {
	SendNotification(to, subject, body, ctaText, ctaURL string) error
	SendPasswordReset(email, token string) error
}

// SMTPConfig holds SMTP plus branding config.
type SMTPConfig struct {
	Host       string // e.g. "smtp.gmail.com"
	Port       int    // 587 (STARTTLS) or 465 (SMTPS)
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool // true for SMTPS 465, false for STARTTLS 587
	RequireTLS bool

	AppName    string
	AppBaseURL string // e.g. "https://boulevard.sistemasudh.com"
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("html").Parse(htmlMailTemplate)),
		textTpl: template.Must(template.New("text").Parse(textMailTemplate)),
	}, nil
}

func (s *smtpMailService) SendNotification(to, subject, body, ctaText, ctaURL string) error {
	html, text, err := s.render(mailData{
		Title:     subject,
		Intro:     body,
		ButtonURL: ctaURL,
		ButtonTxt: ctaText,
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	})
	if err != nil {
		return err
	}
	return s.send(to, subject, html, text)
}

func (s *smtpMailService) SendPasswordReset(to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s",
		strings.TrimRight(s.cfg.AppBaseURL, "/"), url.QueryEscape(token))
	subject := "Restablece tu contraseña"

	html, text, err := s.render(mailData{
		Title:     subject,
		Intro:     "Recibimos una solicitud para restablecer tu contraseña. Haz clic en el botón para continuar. Si no fuiste tú, ignora este correo.",
		ButtonURL: link,
		ButtonTxt: "Restablecer contraseña",
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	})
	if err != nil {
		return err
	}
	return s.send(to, subject, html, text)
}

type mailData struct {
	Title     string
	Intro     string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

const htmlMailTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 0; background: #f8fafc; color: #0f172a;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .container { max-width: 560px; margin: 24px auto; background: #ffffff;
      border-radius: 12px; overflow: hidden; border: 1px solid rgba(0,0,0,0.06); }
    .header { padding: 24px 32px; border-bottom: 1px solid rgba(0,0,0,0.06); }
    .brand { font-size: 20px; font-weight: 700; color: #1e40af; }
    .hero { padding: 32px; }
    h1 { font-size: 22px; margin: 0 0 12px; }
    p { color: #475569; line-height: 1.6; margin: 0 0 16px; }
    .btn { display: inline-block; padding: 12px 28px; border-radius: 8px;
      background: #2563eb; color: #ffffff; text-decoration: none; font-weight: 600; }
    .link-text { color: #2563eb; word-break: break-all; font-size: 13px; }
    .footer { padding: 20px 32px; color: #64748b; font-size: 13px; text-align: center;
      border-top: 1px solid rgba(0,0,0,0.06); }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><div class="brand">{{.AppName}}</div></div>
    <div class="hero">
      <h1>{{.Title}}</h1>
      <p>{{.Intro}}</p>
      {{if .ButtonURL}}
        <p><a class="btn" href="{{.ButtonURL}}">{{.ButtonTxt}}</a></p>
        <p>Si el botón no funciona, copia y pega este enlace en tu navegador:<br>
          <a href="{{.ButtonURL}}" class="link-text">{{.ButtonURL}}</a></p>
      {{end}}
    </div>
    <div class="footer">© {{.Year}} {{.AppName}}. Todos los derechos reservados.</div>
  </div>
</body>
</html>`

const textMailTemplate = `{{.Title}}

{{.Intro}}

{{if .ButtonURL}}Abre este enlace:
{{.ButtonURL}}
{{end}}

— {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) render(data mailData) (html string, text string, err error) {
	var hb, tb bytes.Buffer
	if err = s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	fromHeader := s.formatFromHeader()
	date := time.Now().Format(time.RFC1123Z)
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", fromHeader)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", date)
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()

		return s.submit(c, auth, to, msg.Bytes())
	}

	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	} else if s.cfg.RequireTLS {
		return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
	}

	return s.submit(c, auth, to, msg.Bytes())
}

func (s *smtpMailService) submit(c *smtp.Client, auth smtp.Auth, to string, msg []byte) error {
	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%q <%s>", name, s.cfg.From)
}
